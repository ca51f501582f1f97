package models

// RatingSummary is the rating block embedded in an App Store product page.
// RatingCounts is ordered by descending star value: index 0 holds the
// 5-star count, index 4 the 1-star count.
type RatingSummary struct {
	RatingAverage        float64 `json:"ratingAverage"`
	TotalNumberOfRatings int     `json:"totalNumberOfRatings"`
	RatingCounts         []int   `json:"ratingCounts"`
}
