package view

import (
	"testing"
	"time"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildApproval(t *testing.T) {
	at := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	loc := time.FixedZone("IST", 5*3600+1800)

	v := BuildApproval(&models.Post{ID: "p1", RawStatus: "Approved", Status: models.PostStatusApproved},
		"p1", "2025-03-10T14:30:00Z", "", at, loc)

	assert.Equal(t, "p1", v.PostID)
	assert.Equal(t, "Approved", v.Status)
	assert.Equal(t, "Post queued for autonomous publishing at Mon, 10 Mar 2025 20:00 IST", v.Notice)
}

func TestBuildApproval_EmptyResponse(t *testing.T) {
	at := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	v := BuildApproval(nil, "p1", "2025-03-10T14:30:00Z", "artwork/b1/p1/x.jpg", at, time.UTC)

	assert.Equal(t, "Approved", v.Status)
	assert.Equal(t, "artwork/b1/p1/x.jpg", v.ArtworkURL)
}
