package valid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLength(t *testing.T) {
	assert.NoError(t, Length("", "text", 3))
	assert.NoError(t, Length("★★★", "text", 3))
	assert.EqualError(t, Length(strings.Repeat("a", 4), "text", 3), "text must not be longer than 3 characters")
}

func TestRange(t *testing.T) {
	assert.NoError(t, Range(1, "rating", 1, 5))
	assert.NoError(t, Range(5, "rating", 1, 5))
	assert.EqualError(t, Range(0, "rating", 1, 5), "rating must be between 1 and 5")
	assert.EqualError(t, Range(6, "rating", 1, 5), "rating must be between 1 and 5")
}
