package models

// Session is the per-viewer UI state. Selections overwrite the previous value.
type Session struct {
	ID            string
	ActiveBrandID string
	ActivePostID  string
}

func (s *Session) SelectBrand(brandID string) {
	s.ActiveBrandID = brandID
	s.ActivePostID = ""
}

func (s *Session) Clear() {
	s.ActiveBrandID = ""
	s.ActivePostID = ""
}
