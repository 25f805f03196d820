package view

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(id, status, date string) *models.Post {
	return &models.Post{
		ID:            id,
		Topic:         "Topic " + id,
		ScheduledDate: date,
		RawStatus:     status,
		Status:        models.ParsePostStatus(status),
		Caption:       "caption " + id,
		VisualIdea:    "visual " + id,
	}
}

func TestStatusColor_FallbackOnlyForOtherStatuses(t *testing.T) {
	for _, raw := range []string{"Approved", "Generated", "Planned", "Draft", ""} {
		s := models.ParsePostStatus(raw)
		color := StatusColor(s)
		if s == models.PostStatusApproved || s == models.PostStatusGenerated {
			assert.NotEqual(t, ColorDefault, color, raw)
		} else {
			assert.Equal(t, ColorDefault, color, raw)
		}
	}
	assert.NotEqual(t, ColorApproved, ColorGenerated)
}

func TestBuildCalendar(t *testing.T) {
	cal := BuildCalendar("b1", []*models.Post{
		post("p1", "Planned", "2025-03-01T10:00"),
		post("p2", "Generated", "2025-03-02T10:00:00"),
		post("p3", "Approved", "2025-03-03T09:00:00+00:00"),
		nil,
	})

	require.Len(t, cal.Entries, 3)
	assert.False(t, cal.NoBrand)
	assert.Equal(t, "b1", cal.BrandID)

	assert.Equal(t, "p1", cal.Entries[0].ID)
	assert.Equal(t, "Topic p1", cal.Entries[0].Title)
	assert.Equal(t, "2025-03-01T10:00Z", cal.Entries[0].Start)
	assert.Equal(t, ColorDefault, cal.Entries[0].BackgroundColor)

	assert.Equal(t, "2025-03-02T10:00:00Z", cal.Entries[1].Start)
	assert.Equal(t, ColorGenerated, cal.Entries[1].BackgroundColor)

	assert.Equal(t, "2025-03-03T09:00:00+00:00", cal.Entries[2].Start)
	assert.Equal(t, ColorApproved, cal.Entries[2].BackgroundColor)
}

func TestEmptyCalendar(t *testing.T) {
	cal := EmptyCalendar()
	assert.True(t, cal.NoBrand)
	assert.NotNil(t, cal.Entries)
	assert.Empty(t, cal.Entries)
}

func TestBuildDetails_Planned(t *testing.T) {
	d := BuildDetails(post("p1", "Planned", "2025-03-01T10:00:00"), time.UTC)

	assert.False(t, d.ShowContent)
	assert.Empty(t, d.Caption)
	assert.Empty(t, d.VisualIdea)
	assert.Equal(t, LabelGenerate, d.GenerateLabel)
	assert.True(t, d.ShowUpload)
	assert.Equal(t, "status-badge planned", d.Status.Class)
	assert.Equal(t, "2025-03-01T10:00", d.ScheduledInput)
}

func TestBuildDetails_GeneratedInViewerZone(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	d := BuildDetails(post("p2", "Generated", "2025-03-01T18:00:00"), la)

	assert.True(t, d.ShowContent)
	assert.Equal(t, "caption p2", d.Caption)
	assert.Equal(t, "visual p2", d.VisualIdea)
	assert.Equal(t, LabelRegenerate, d.GenerateLabel)
	assert.Equal(t, "2025-03-01T10:00", d.ScheduledInput)
	assert.Contains(t, d.ScheduledAt, "10:00")
}

func TestBuildDetails_ApprovedHidesUpload(t *testing.T) {
	d := BuildDetails(post("p3", "Approved", "2025-03-02T09:00:00Z"), time.UTC)

	assert.False(t, d.ShowUpload)
	assert.True(t, d.ShowContent)
	assert.Equal(t, "Approved", d.Status.Label)
	assert.Equal(t, "status-badge approved", d.Status.Class)
}

func TestBuildDetails_UnparseableDate(t *testing.T) {
	d := BuildDetails(post("p4", "Planned", "someday"), time.UTC)
	assert.Empty(t, d.ScheduledInput)
	assert.Empty(t, d.ScheduledAt)
}

func TestPrefillPlanDate(t *testing.T) {
	assert.Equal(t, "2025-03-01T10:00", PrefillPlanDate("2025-03-01"))
}
