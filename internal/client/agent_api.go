package client

import (
	"context"
	"net/http"
	"time"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"go.uber.org/zap"
)

// AgentAPI is the standalone research agent that drafts a week of content
// from a client brief.
type AgentAPI interface {
	Generate(ctx context.Context, brief *transfer.AgentBrief) (*models.WeekPlan, error)
}

type agentAPI struct {
	*httpClient
}

func NewAgentAPI(baseURL string, timeout time.Duration, log *zap.Logger) AgentAPI {
	return &agentAPI{httpClient: newHTTPClient(baseURL, timeout, timeout, log)}
}

func (c *agentAPI) Generate(ctx context.Context, brief *transfer.AgentBrief) (*models.WeekPlan, error) {
	var plan models.WeekPlan
	if err := c.do(ctx, c.slow, http.MethodPost, "/generate", brief, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
