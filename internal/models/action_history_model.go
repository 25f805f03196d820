package models

import "time"

type ActionHistory struct {
	ID           int64     `db:"id" json:"id"`
	SessionID    string    `db:"session_id" json:"session_id"`
	BrandID      string    `db:"brand_id" json:"brand_id"`
	PostID       string    `db:"post_id" json:"post_id"`
	Action       string    `db:"action" json:"action"`
	StatusCode   int       `db:"status_code" json:"status_code"`
	ErrorMessage string    `db:"error_message" json:"error_message"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const (
	ActionCreateBrand   = "create_brand"
	ActionDeleteBrand   = "delete_brand"
	ActionPlan          = "plan"
	ActionGenerate      = "generate"
	ActionGenerateMonth = "generate_month"
	ActionScheduleWeek  = "schedule_week"
	ActionApprove       = "approve"
	ActionAgent         = "agent"
)
