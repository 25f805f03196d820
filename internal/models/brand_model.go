package models

type Brand struct {
	ID                  string `json:"_id"`
	Name                string `json:"name"`
	Industry            string `json:"industry"`
	Website             string `json:"website"`
	PhoneNumber         string `json:"phone_number,omitempty"`
	FacebookPageID      string `json:"facebook_page_id,omitempty"`
	FacebookAccessToken string `json:"facebook_access_token,omitempty"`
	ToneVoice           string `json:"tone_voice,omitempty"`
	// CreatedAt is passed through as sent; the server omits the zone.
	CreatedAt string `json:"created_at,omitempty"`
}

const DefaultToneVoice = "Professional"
