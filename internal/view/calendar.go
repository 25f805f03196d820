// Package view turns domain state into the render models the browser draws.
// Nothing here performs I/O.
package view

import (
	"strings"
	"time"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/pkg/utils"
)

const (
	ColorApproved  = "#6366f1"
	ColorGenerated = "#10b981"
	ColorDefault   = "#334155"
)

const (
	LabelGenerate   = "Generate Content"
	LabelRegenerate = "Regenerate"
)

// DefaultPlanTime is the time of day pre-filled when a calendar day is clicked.
const DefaultPlanTime = "10:00"

func StatusColor(s models.PostStatus) string {
	switch s {
	case models.PostStatusApproved:
		return ColorApproved
	case models.PostStatusGenerated:
		return ColorGenerated
	default:
		return ColorDefault
	}
}

type CalendarEntry struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Start           string       `json:"start"`
	BackgroundColor string       `json:"backgroundColor"`
	Status          string       `json:"status"`
	ExtendedProps   *models.Post `json:"extendedProps"`
}

type CalendarView struct {
	BrandID string          `json:"brand_id,omitempty"`
	NoBrand bool            `json:"no_brand"`
	Entries []CalendarEntry `json:"entries"`
}

func EmptyCalendar() CalendarView {
	return CalendarView{NoBrand: true, Entries: []CalendarEntry{}}
}

func BuildCalendar(brandID string, posts []*models.Post) CalendarView {
	entries := make([]CalendarEntry, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		entries = append(entries, CalendarEntry{
			ID:              p.ID,
			Title:           p.Topic,
			Start:           utils.NormalizeUTC(p.ScheduledDate),
			BackgroundColor: StatusColor(p.Status),
			Status:          p.StatusLabel(),
			ExtendedProps:   p,
		})
	}
	return CalendarView{BrandID: brandID, Entries: entries}
}

type StatusBadge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

type PostDetails struct {
	ID             string      `json:"id"`
	Topic          string      `json:"topic"`
	ScheduledAt    string      `json:"scheduled_at"`
	ScheduledInput string      `json:"scheduled_input"`
	Status         StatusBadge `json:"status"`
	ShowContent    bool        `json:"show_content"`
	Caption        string      `json:"caption,omitempty"`
	VisualIdea     string      `json:"visual_idea,omitempty"`
	GenerateLabel  string      `json:"generate_label"`
	ShowUpload     bool        `json:"show_upload"`
}

// BuildDetails renders the detail panel for p in the viewer's zone. The
// editable schedule field is local wall time; the stored value stays UTC.
func BuildDetails(p *models.Post, loc *time.Location) PostDetails {
	d := PostDetails{
		ID:    p.ID,
		Topic: p.Topic,
		Status: StatusBadge{
			Label: p.StatusLabel(),
			Class: "status-badge " + strings.ToLower(p.Status.String()),
		},
		GenerateLabel: LabelGenerate,
		ShowUpload:    p.Status != models.PostStatusApproved,
	}

	if at, err := utils.ParseServerTime(p.ScheduledDate); err == nil {
		d.ScheduledAt = utils.ToLocalDisplay(at, loc)
		d.ScheduledInput = utils.ToLocalInput(at, loc)
	}

	if p.HasContent() {
		d.ShowContent = true
		d.Caption = p.Caption
		d.VisualIdea = p.VisualIdea
		d.GenerateLabel = LabelRegenerate
	}
	return d
}

// PrefillPlanDate returns the plan form value for a clicked calendar day.
func PrefillPlanDate(day string) string {
	return strings.TrimSpace(day) + "T" + DefaultPlanTime
}
