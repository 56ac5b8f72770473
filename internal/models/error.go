package models

type ErrorResponse struct {
	Err string `json:"reason"`
}

func ErrorResp(err string) *ErrorResponse {
	return &ErrorResponse{Err: err}
}

// Error is returned when user input can't be parsed.
type Error struct {
	desc string
}

func NewParseError(desc string) *Error {
	return &Error{desc: desc}
}

func (e *Error) Response() *ErrorResponse {
	return &ErrorResponse{Err: e.desc}
}

func (e *Error) Error() string {
	return "parsing error: " + e.desc
}
