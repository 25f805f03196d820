package view

import "github.com/maheshrc27/brand-engine/internal/models"

type AgentState string

const (
	AgentIdle    AgentState = "idle"
	AgentLoading AgentState = "loading"
	AgentLoaded  AgentState = "loaded"
	AgentError   AgentState = "error"
)

type AgentView struct {
	State      AgentState           `json:"state"`
	Message    string               `json:"message,omitempty"`
	WeekFocus  string               `json:"week_focus,omitempty"`
	ClientName string               `json:"client_name,omitempty"`
	Cards      []models.ContentCard `json:"cards,omitempty"`
}

func AgentResult(plan *models.WeekPlan) AgentView {
	cards := plan.Cards
	if cards == nil {
		cards = []models.ContentCard{}
	}
	return AgentView{
		State:      AgentLoaded,
		WeekFocus:  plan.WeekFocus,
		ClientName: plan.ClientName,
		Cards:      cards,
	}
}

func AgentFailure(message string) AgentView {
	return AgentView{State: AgentError, Message: message}
}
