package models

import (
	"encoding/json"
	"strings"
)

// PostStatus is the closed set of lifecycle states a post moves through.
type PostStatus int

const (
	PostStatusPlanned PostStatus = iota
	PostStatusGenerated
	PostStatusApproved
)

func (s PostStatus) String() string {
	switch s {
	case PostStatusGenerated:
		return "Generated"
	case PostStatusApproved:
		return "Approved"
	default:
		return "Planned"
	}
}

// ParsePostStatus maps a wire status onto the lifecycle. Anything that is not
// Generated or Approved is treated as Planned.
func ParsePostStatus(raw string) PostStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "generated":
		return PostStatusGenerated
	case "approved":
		return PostStatusApproved
	default:
		return PostStatusPlanned
	}
}

func (s PostStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PostStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParsePostStatus(raw)
	return nil
}

type Post struct {
	ID            string     `json:"_id"`
	BrandID       string     `json:"brand_id"`
	Topic         string     `json:"topic"`
	ScheduledDate string     `json:"scheduled_date"`
	Status        PostStatus `json:"-"`
	RawStatus     string     `json:"status"`
	Caption       string     `json:"caption"`
	VisualIdea    string     `json:"visual_idea"`
	ImageBase64   string     `json:"image_base64,omitempty"`
	Day           string     `json:"day,omitempty"`
	CreatedAt     string     `json:"created_at,omitempty"`
}

type postAlias Post

// UnmarshalJSON keeps the wire status for display and derives the lifecycle
// state from it.
func (p *Post) UnmarshalJSON(data []byte) error {
	var a postAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Post(a)
	p.Status = ParsePostStatus(p.RawStatus)
	return nil
}

// StatusLabel is the status as the server spelled it, or the lifecycle name
// when the server sent nothing.
func (p *Post) StatusLabel() string {
	if s := strings.TrimSpace(p.RawStatus); s != "" {
		return s
	}
	return p.Status.String()
}

func (p *Post) HasContent() bool {
	return p.Status != PostStatusPlanned
}
