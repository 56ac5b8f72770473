package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	valid "appreview/internal/lib/validate"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxTextLength = 1000
)

type ReviewBase struct {
	Rating int    `json:"rating" yaml:"rating"`
	Text   string `json:"text" yaml:"text"`
}

// ReviewNew is a submission. Rating 0 means stars were not selected.
type ReviewNew struct {
	ReviewBase
}

// Validate checks text length and, if set, rating range.
func (r *ReviewNew) Validate() error {
	if err := valid.Length(r.Text, "text", MaxTextLength); err != nil {
		return NewParseError(err.Error())
	}

	// Unset rating is not an error, submission is ignored later.
	if r.Unset() {
		return nil
	}

	if err := valid.Range(r.Rating, "rating", MinRating, MaxRating); err != nil {
		return NewParseError(err.Error())
	}

	return nil
}

func (r *ReviewNew) UnmarshalJSON(data []byte) error {
	type _reviewNew ReviewNew

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var tmp _reviewNew
	if err := decoder.Decode(&tmp); err != nil {
		return err
	}

	r.ReviewBase = tmp.ReviewBase

	if err := r.Validate(); err != nil {
		return err
	}

	return nil
}

// Unset reports whether submission has no rating selected.
func (r *ReviewNew) Unset() bool {
	return r.Rating == 0
}

func (r *ReviewNew) ToReview() Review {
	return Review{
		ReviewBase: r.ReviewBase,
		Id:         uuid.Nil,
		Status:     Pending,
	}
}

type ReviewOut struct {
	ReviewBase
	Id        uuid.UUID    `json:"id"`
	Status    ReviewStatus `json:"status"`
	Sample    bool         `json:"sample"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Review struct {
	ReviewBase
	Id        uuid.UUID
	Status    ReviewStatus
	Sample    bool
	CreatedAt time.Time
}

func (r *Review) ToOut() ReviewOut {
	return ReviewOut{
		ReviewBase: r.ReviewBase,
		Id:         r.Id,
		Status:     r.Status,
		Sample:     r.Sample,
		CreatedAt:  r.CreatedAt,
	}
}

// Summary is the header of rating page.
type Summary struct {
	Average float64 `json:"average"`
	Total   int64   `json:"total"`
}

func ToOut(reviews []Review) []ReviewOut {
	out := make([]ReviewOut, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviews[i].ToOut())
	}
	return out
}
