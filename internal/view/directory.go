package view

import "github.com/maheshrc27/brand-engine/internal/models"

const NoticeOffline = "server offline"

type BrandItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Active   bool   `json:"active"`
}

type DirectoryView struct {
	Brands  []BrandItem `json:"brands"`
	Offline bool        `json:"offline"`
	Notice  string      `json:"notice,omitempty"`
}

func BuildDirectory(brands []*models.Brand, activeBrandID string) DirectoryView {
	items := make([]BrandItem, 0, len(brands))
	for _, b := range brands {
		if b == nil {
			continue
		}
		items = append(items, BrandItem{
			ID:       b.ID,
			Name:     b.Name,
			Industry: b.Industry,
			Active:   b.ID != "" && b.ID == activeBrandID,
		})
	}
	return DirectoryView{Brands: items}
}

func OfflineDirectory() DirectoryView {
	return DirectoryView{Brands: []BrandItem{}, Offline: true, Notice: NoticeOffline}
}
