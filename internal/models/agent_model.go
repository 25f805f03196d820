package models

type ContentCard struct {
	Day        string `json:"day"`
	Topic      string `json:"topic"`
	Caption    string `json:"caption"`
	VisualIdea string `json:"visual_idea"`
}

type WeekPlan struct {
	WeekFocus  string        `json:"week_focus"`
	ClientName string        `json:"client_name"`
	Cards      []ContentCard `json:"cards"`
}
