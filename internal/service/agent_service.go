package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"github.com/maheshrc27/brand-engine/internal/view"
	"go.uber.org/zap"
)

const msgAgentFailed = "The research agent could not build a plan. Try again."

type AgentService interface {
	Submit(ctx context.Context, sess *models.Session, brief *transfer.AgentBrief) (view.AgentView, error)
	State(sess *models.Session) view.AgentView
}

type agentService struct {
	api   client.AgentAPI
	guard *InFlight
	rec   recorder
	log   *zap.Logger
}

func NewAgentService(api client.AgentAPI, history repository.HistoryRepository, guard *InFlight, log *zap.Logger) AgentService {
	return &agentService{
		api:   api,
		guard: guard,
		rec:   recorder{h: history, log: log},
		log:   log,
	}
}

// Submit runs the research agent for one brief. Remote failures come back as
// an error view, not as an error.
func (s *agentService) Submit(ctx context.Context, sess *models.Session, brief *transfer.AgentBrief) (view.AgentView, error) {
	if brief == nil {
		return view.AgentView{State: view.AgentIdle}, newValidationError("", "brief is missing")
	}
	brief.ClientName = strings.TrimSpace(brief.ClientName)
	brief.Industry = strings.TrimSpace(brief.Industry)
	brief.WebsiteURL = strings.TrimSpace(brief.WebsiteURL)
	brief.AdditionalNotes = strings.TrimSpace(brief.AdditionalNotes)

	if err := validateStruct(brief); err != nil {
		return view.AgentView{State: view.AgentIdle}, err
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionAgent))
	if err != nil {
		return view.AgentView{State: view.AgentLoading}, err
	}
	defer release()

	plan, err := s.api.Generate(ctx, brief)
	s.rec.record(ctx, sess, models.ActionAgent, sess.ActiveBrandID, "", err)
	if err != nil {
		s.log.Warn("research agent failed", zap.String("client_name", brief.ClientName), zap.Error(err))
		return view.AgentFailure(msgAgentFailed), nil
	}

	s.log.Info("research agent plan ready", zap.String("client_name", brief.ClientName), zap.Int("cards", len(plan.Cards)))
	return view.AgentResult(plan), nil
}

func (s *agentService) State(sess *models.Session) view.AgentView {
	if s.guard.Busy(actionKey(sess.ID, models.ActionAgent)) {
		return view.AgentView{State: view.AgentLoading}
	}
	return view.AgentView{State: view.AgentIdle}
}
