package models

type ReviewStatus string
type StatusFilter string

const (
	Pending  ReviewStatus = "pending"
	Approved ReviewStatus = "approved"
	Rejected ReviewStatus = "rejected"
)

const (
	FilterAll      StatusFilter = "all"
	FilterPending  StatusFilter = StatusFilter(Pending)
	FilterApproved StatusFilter = StatusFilter(Approved)
	FilterRejected StatusFilter = StatusFilter(Rejected)
)

// Filters lists status filters in the order the admin page cycles them.
var Filters = []StatusFilter{FilterAll, FilterPending, FilterApproved, FilterRejected}

func StrToReviewStatus(s string) (ReviewStatus, error) {
	st := ReviewStatus(s)
	switch st {
	case Pending, Approved, Rejected:
		return st, nil
	default:
		return st, NewParseError("unknown review status")
	}
}

// Terminal reports whether no further transitions are allowed.
func (s ReviewStatus) Terminal() bool {
	return s == Approved || s == Rejected
}

// StrToStatusFilter parses filter. Empty string means all reviews.
func StrToStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}

	f := StatusFilter(s)
	switch f {
	case FilterAll, FilterPending, FilterApproved, FilterRejected:
		return f, nil
	default:
		return f, NewParseError("unknown status filter")
	}
}

// Match reports whether review with given status passes the filter.
func (f StatusFilter) Match(status ReviewStatus) bool {
	if f == FilterAll {
		return true
	}
	return ReviewStatus(f) == status
}

// Next returns filter following f in Filters.
func (f StatusFilter) Next() StatusFilter {
	for i, filter := range Filters {
		if filter == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}
