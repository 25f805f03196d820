package transfer

type BrandCreation struct {
	Name                string `json:"name" validate:"required"`
	Industry            string `json:"industry" validate:"required"`
	Website             string `json:"website" validate:"required"`
	PhoneNumber         string `json:"phone_number" validate:"required"`
	FacebookPageID      string `json:"facebook_page_id,omitempty"`
	FacebookAccessToken string `json:"facebook_access_token,omitempty"`
	ToneVoice           string `json:"tone_voice,omitempty"`
}

type BrandCreated struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
