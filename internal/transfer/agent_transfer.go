package transfer

type AgentBrief struct {
	ClientName      string `json:"client_name" validate:"required"`
	Industry        string `json:"industry" validate:"required"`
	WebsiteURL      string `json:"website_url" validate:"required"`
	AdditionalNotes string `json:"additional_notes"`
}
