package appstore

import (
	"encoding/json"
	"regexp"

	"github.com/pkg/errors"

	"github.com/omatviiv/appstore-ratings/pkg/models"
)

// The ratings block sits inside a serialized state payload on the product
// page. The pattern assumes "marker":null literally precedes "items"; a
// non-null marker is a non-match and surfaces as ErrBlockNotFound.
var productRatingsPattern = regexp.MustCompile(
	`(?s)"contentType":"productRatings","marker":null,"items":\[(\{.*?\})\]`,
)

var requiredKeys = []string{"ratingAverage", "totalNumberOfRatings", "ratingCounts"}

// ExtractProductRatings locates the productRatings block in the page body,
// decodes it and validates its shape.
func ExtractProductRatings(body string) (*models.RatingSummary, error) {
	m := productRatingsPattern.FindStringSubmatch(body)
	if m == nil {
		return nil, ErrBlockNotFound
	}

	// The capture group holds a bare object fragment, so wrap it back into
	// an array literal before decoding.
	wrapped := []byte("[" + m[1] + "]")

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(wrapped, &items); err != nil {
		return nil, errors.Wrap(err, "Failed to decode productRatings JSON")
	}
	parsed := items[0]

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := parsed[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingKeysError{Keys: missing}
	}

	var summary models.RatingSummary
	if err := json.Unmarshal(parsed["ratingAverage"], &summary.RatingAverage); err != nil {
		return nil, errors.Wrap(err, "Failed to decode productRatings JSON")
	}
	if err := json.Unmarshal(parsed["totalNumberOfRatings"], &summary.TotalNumberOfRatings); err != nil {
		return nil, errors.Wrap(err, "Failed to decode productRatings JSON")
	}
	if err := json.Unmarshal(parsed["ratingCounts"], &summary.RatingCounts); err != nil {
		return nil, errors.Wrap(err, "Failed to decode productRatings JSON")
	}

	if len(summary.RatingCounts) != 5 {
		return nil, ErrRatingCountsShape
	}

	return &summary, nil
}
