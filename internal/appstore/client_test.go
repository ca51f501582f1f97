package appstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchProductRatings(t *testing.T) {
	var gotPath, gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(pageWith(`{"ratingAverage":4.5,"totalNumberOfRatings":120,"ratingCounts":[80,20,10,5,5]}`)))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	summary, err := client.FetchProductRatings(context.Background(), "1234567890", "ua")
	require.NoError(t, err)

	require.Equal(t, "/ua/app/id1234567890", gotPath)
	require.Contains(t, gotUA, "Chrome/129.0.0.0")
	require.Equal(t, "en-US,en;q=0.9", gotLang)

	require.Equal(t, 4.5, summary.RatingAverage)
	require.Equal(t, 120, summary.TotalNumberOfRatings)
	require.Equal(t, []int{80, 20, 10, 5, 5}, summary.RatingCounts)
}

func TestFetchProductRatingsHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.FetchProductRatings(context.Background(), "1234567890", "ua")
	require.EqualError(t, err, "App Store page returned HTTP 404")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestFetchProductRatingsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.FetchProductRatings(context.Background(), "1234567890", "ua")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to fetch App Store page")
}

func TestFetchProductRatingsNoBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>app page without embedded ratings</body></html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.FetchProductRatings(context.Background(), "1234567890", "ua")
	require.ErrorIs(t, err, ErrBlockNotFound)
}
