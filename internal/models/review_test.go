package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewNew(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		expect ReviewNew
		err    string
	}{
		{
			name:   "main line",
			body:   `{"rating": 4, "text": "x"}`,
			expect: ReviewNew{ReviewBase{Rating: 4, Text: "x"}},
		},
		{
			name:   "text is optional",
			body:   `{"rating": 5}`,
			expect: ReviewNew{ReviewBase{Rating: 5}},
		},
		{
			name:   "unset rating",
			body:   `{"text": "no stars"}`,
			expect: ReviewNew{ReviewBase{Text: "no stars"}},
		},
		{
			name: "rating too big",
			body: `{"rating": 6}`,
			err:  "rating must be between 1 and 5",
		},
		{
			name: "negative rating",
			body: `{"rating": -1}`,
			err:  "rating must be between 1 and 5",
		},
		{
			name: "text too long",
			body: `{"rating": 3, "text": "` + strings.Repeat("a", MaxTextLength+1) + `"}`,
			err:  "text must not be longer than 1000 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var review ReviewNew

			err := json.Unmarshal([]byte(tt.body), &review)
			if tt.err != "" {
				var parseErr *Error
				if assert.ErrorAs(t, err, &parseErr) {
					assert.Equal(t, tt.err, parseErr.Response().Err)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, review)
		})
	}
}

func TestReviewNewUnknownField(t *testing.T) {
	var review ReviewNew

	err := json.Unmarshal([]byte(`{"rating": 4, "stars": 4}`), &review)
	assert.Error(t, err)
}

func TestReviewNewToReview(t *testing.T) {
	review := ReviewNew{ReviewBase{Rating: 2, Text: "meh"}}

	got := review.ToReview()

	assert.Equal(t, Pending, got.Status)
	assert.Equal(t, 2, got.Rating)
	assert.Equal(t, "meh", got.Text)
	assert.False(t, got.Sample)
}

func TestStatusFilter(t *testing.T) {
	f, err := StrToStatusFilter("")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = StrToStatusFilter("archived")
	assert.Error(t, err)

	assert.True(t, FilterAll.Match(Rejected))
	assert.True(t, FilterPending.Match(Pending))
	assert.False(t, FilterPending.Match(Approved))

	assert.Equal(t, FilterPending, FilterAll.Next())
	assert.Equal(t, FilterAll, FilterRejected.Next())
}

func TestReviewStatus(t *testing.T) {
	s, err := StrToReviewStatus("approved")
	assert.NoError(t, err)
	assert.Equal(t, Approved, s)

	_, err = StrToReviewStatus("done")
	assert.Error(t, err)

	assert.False(t, Pending.Terminal())
	assert.True(t, Approved.Terminal())
	assert.True(t, Rejected.Terminal())
}
