package transfer

type PostPlan struct {
	BrandID       string `json:"brand_id" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
}

type PostApproval struct {
	ImageBase64   string `json:"image_base64"`
	ScheduledDate string `json:"scheduled_date"`
}

type MonthGeneration struct {
	BrandID string `json:"brand_id" validate:"required"`
}

type MonthGenerated struct {
	Status         string `json:"status"`
	GeneratedCount int    `json:"generated_count"`
}

type WeeklySchedule struct {
	BrandID   string   `json:"brand_id" validate:"required"`
	WeekFocus string   `json:"week_focus" validate:"required"`
	Topics    []string `json:"topics" validate:"required,min=1,dive,required"`
}

type WeeklyScheduled struct {
	Status         string `json:"status"`
	GeneratedCount int    `json:"generated_count"`
}

// APIStatus is the payload served at the content API root.
type APIStatus struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// PlanForm is the browser's plan request. The brand comes from the session.
type PlanForm struct {
	Topic         string `json:"topic" form:"topic"`
	ScheduledDate string `json:"scheduled_date" form:"scheduled_date"`
}

type WeekForm struct {
	WeekFocus string   `json:"week_focus" form:"week_focus"`
	Topics    []string `json:"topics" form:"topics"`
}
