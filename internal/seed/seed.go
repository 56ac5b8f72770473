// Package seed loads demonstration reviews.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	valid "appreview/internal/lib/validate"
	"appreview/internal/models"
)

//go:embed samples.yaml
var samples []byte

type sample struct {
	Rating int    `yaml:"rating"`
	Text   string `yaml:"text"`
	Status string `yaml:"status"`
}

// Samples returns built-in sample reviews.
func Samples() []models.Review {
	reviews, err := Parse(samples)
	if err != nil {
		panic("invalid embedded samples: " + err.Error())
	}
	return reviews
}

// Load reads sample reviews from YAML file.
// Empty path means built-in samples.
func Load(path string) ([]models.Review, error) {
	const op = "seed.Load"

	if path == "" {
		return Samples(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}

	return reviews, nil
}

// Parse decodes YAML list of reviews.
func Parse(data []byte) ([]models.Review, error) {
	var list []sample
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(list))
	for i, s := range list {
		if err := valid.Range(s.Rating, "rating", models.MinRating, models.MaxRating); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if err := valid.Length(s.Text, "text", models.MaxTextLength); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		status, err := models.StrToReviewStatus(s.Status)
		if err != nil {
			return nil, fmt.Errorf("sample %d: unknown status %q", i, s.Status)
		}

		reviews = append(reviews, models.Review{
			ReviewBase: models.ReviewBase{Rating: s.Rating, Text: s.Text},
			Status:     status,
			Sample:     true,
		})
	}

	return reviews, nil
}
