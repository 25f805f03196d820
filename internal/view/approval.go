package view

import (
	"time"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/pkg/utils"
)

const queuedNoticePrefix = "Post queued for autonomous publishing at "

type ApprovalView struct {
	PostID       string `json:"post_id"`
	Status       string `json:"status"`
	ScheduledUTC string `json:"scheduled_utc"`
	ArtworkURL   string `json:"artwork_url,omitempty"`
	Notice       string `json:"notice"`
}

// QueuedNotice is the confirmation shown once a post is approved.
func QueuedNotice(at time.Time, loc *time.Location) string {
	return queuedNoticePrefix + utils.ToLocalDisplay(at, loc)
}

func BuildApproval(p *models.Post, postID, scheduledUTC, artworkURL string, at time.Time, loc *time.Location) *ApprovalView {
	status := models.PostStatusApproved.String()
	if p != nil && p.RawStatus != "" {
		status = p.StatusLabel()
	}
	return &ApprovalView{
		PostID:       postID,
		Status:       status,
		ScheduledUTC: scheduledUTC,
		ArtworkURL:   artworkURL,
		Notice:       QueuedNotice(at, loc),
	}
}
