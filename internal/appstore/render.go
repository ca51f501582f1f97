package appstore

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/omatviiv/appstore-ratings/pkg/models"
)

// ratingAverage marshals whole numbers with a trailing ".0", matching the
// decimal averages the storefront payload carries.
type ratingAverage float64

func (v ratingAverage) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(v), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

type renderedSummary struct {
	RatingAverage        ratingAverage `json:"ratingAverage"`
	TotalNumberOfRatings int           `json:"totalNumberOfRatings"`
	RatingCounts         []int         `json:"ratingCounts"`
}

func renderable(s *models.RatingSummary) renderedSummary {
	return renderedSummary{
		RatingAverage:        ratingAverage(s.RatingAverage),
		TotalNumberOfRatings: s.TotalNumberOfRatings,
		RatingCounts:         s.RatingCounts,
	}
}

// RenderCompact serializes the summary on a single line with a space after
// each separator and no trailing newline. The payload is purely numeric, so
// rewriting separators cannot touch string contents.
func RenderCompact(s *models.RatingSummary) ([]byte, error) {
	raw, err := json.Marshal(renderable(s))
	if err != nil {
		return nil, err
	}
	raw = bytes.ReplaceAll(raw, []byte(","), []byte(", "))
	raw = bytes.ReplaceAll(raw, []byte(":"), []byte(": "))
	return raw, nil
}

// RenderPretty serializes the summary indented by two spaces with a trailing
// newline.
func RenderPretty(s *models.RatingSummary) ([]byte, error) {
	raw, err := json.MarshalIndent(renderable(s), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}
