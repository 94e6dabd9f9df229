package handlers

import (
	"net/http"
	"testing"

	"chillgamer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWatchlistInput() map[string]interface{} {
	return map[string]interface{}{
		"imageUrl":       "https://example.com/doom.jpg",
		"gameTitle":      "Doom Eternal",
		"description":    "Rip and tear until it is done.",
		"rating":         9,
		"publishingYear": 2020,
		"genre":          "Action",
	}
}

func TestAddToWatchlistRequiresIdentity(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(t, r, "POST", "/watchlist", validWatchlistInput())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWatchlistScopedByOwner(t *testing.T) {
	r := setupRouter(t, &Identity{Email: "b@x.com", DisplayName: "Bob"})

	w := doRequest(t, r, "POST", "/watchlist", validWatchlistInput())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, "GET", "/watchlist?email=b@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.WatchlistEntry
	decodeBody(t, w, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "Doom Eternal", entries[0].GameTitle)
	assert.Equal(t, "b@x.com", entries[0].UserEmail)

	w = doRequest(t, r, "GET", "/watchlist?email=c@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	decodeBody(t, w, &entries)
	assert.Empty(t, entries)
}

func TestWatchlistAllowsDuplicates(t *testing.T) {
	r := setupRouter(t, &Identity{Email: "b@x.com"})

	for i := 0; i < 2; i++ {
		w := doRequest(t, r, "POST", "/watchlist", validWatchlistInput())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, "GET", "/watchlist?email=b@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.WatchlistEntry
	decodeBody(t, w, &entries)
	assert.Len(t, entries, 2)
}

// A watchlist entry is a snapshot: deleting the source review must not
// touch it.
func TestWatchlistSurvivesReviewDeletion(t *testing.T) {
	r := setupRouter(t, authorIdentity)

	w := doRequest(t, r, "POST", "/review", validReviewInput())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &created)

	w = doRequest(t, r, "POST", "/watchlist", validWatchlistInput())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, "DELETE", "/review/"+created.InsertedID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, "GET", "/watchlist?email=a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.WatchlistEntry
	decodeBody(t, w, &entries)
	assert.Len(t, entries, 1)
}

func TestRemoveFromWatchlistTwiceReportsNotFound(t *testing.T) {
	r := setupRouter(t, &Identity{Email: "b@x.com"})

	w := doRequest(t, r, "POST", "/watchlist", validWatchlistInput())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &created)

	w = doRequest(t, r, "DELETE", "/watchlist/"+created.InsertedID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, "DELETE", "/watchlist/"+created.InsertedID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromWatchlistForbiddenForNonOwner(t *testing.T) {
	r := setupRouter(t, &Identity{Email: "b@x.com"})

	w := doRequest(t, r, "POST", "/watchlist", validWatchlistInput())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &created)

	intruder := mountRoutes(&Identity{Email: "c@x.com"})
	w = doRequest(t, intruder, "DELETE", "/watchlist/"+created.InsertedID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
