package appstore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBlockNotFound means the page HTML carried no productRatings block.
	ErrBlockNotFound = errors.New("productRatings block not found in HTML response")

	// ErrRatingCountsShape means ratingCounts did not hold exactly five entries.
	ErrRatingCountsShape = errors.New("ratingCounts must be a list of five integers (5-star first)")
)

// StatusError reports a non-2xx response from the product page.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("App Store page returned HTTP %d", e.Code)
}

// MissingKeysError lists required keys absent from the decoded block.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "Missing expected keys in productRatings block: " + strings.Join(e.Keys, ", ")
}
