package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appreview/internal/models"
)

func TestSamples(t *testing.T) {
	reviews := Samples()
	require.Len(t, reviews, 15)

	sum := 0
	counts := map[models.ReviewStatus]int{}
	for _, r := range reviews {
		sum += r.Rating
		counts[r.Status]++
		assert.True(t, r.Sample)
	}

	assert.Equal(t, 51, sum)
	assert.Equal(t, 8, counts[models.Approved])
	assert.Equal(t, 3, counts[models.Pending])
	assert.Equal(t, 4, counts[models.Rejected])

	assert.Equal(t, "Amazing app! Really helped me.", reviews[0].Text)
	assert.Equal(t, "It’s okay, does the job.", reviews[7].Text)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{
			name: "main line",
			data: "- {rating: 2, text: meh, status: pending}\n",
		},
		{
			name: "bad rating",
			data: "- {rating: 0, text: meh, status: pending}\n",
			err:  "sample 0: rating must be between 1 and 5",
		},
		{
			name: "bad status",
			data: "- {rating: 1, text: meh, status: archived}\n",
			err:  `sample 0: unknown status "archived"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	reviews, err := Load("")
	require.NoError(t, err)
	assert.Len(t, reviews, 15)

	path := filepath.Join(t.TempDir(), "samples.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {rating: 4, text: x, status: approved}\n"), 0o600))

	reviews, err = Load(path)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, models.Approved, reviews[0].Status)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
