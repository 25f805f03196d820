package service

import (
	"context"
	"net/http"
	"time"

	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"go.uber.org/zap"
)

const historyWriteTimeout = 5 * time.Second

// recorder writes one action_history row per remote mutation. Failures are
// logged and never reach the caller.
type recorder struct {
	h   repository.HistoryRepository
	log *zap.Logger
}

func (r recorder) record(ctx context.Context, sess *models.Session, action, brandID, postID string, err error) {
	entry := &models.ActionHistory{
		SessionID:  sess.ID,
		BrandID:    brandID,
		PostID:     postID,
		Action:     action,
		StatusCode: http.StatusOK,
	}
	if err != nil {
		entry.StatusCode = 0
		entry.ErrorMessage = err.Error()
		if se, ok := client.AsStatusError(err); ok {
			entry.StatusCode = se.StatusCode
		}
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historyWriteTimeout)
	defer cancel()

	if _, werr := r.h.Create(ctx, entry); werr != nil {
		r.log.Warn("failed to record action",
			zap.String("action", action),
			zap.String("brand_id", brandID),
			zap.String("post_id", postID),
			zap.Error(werr))
	}
}

const historyPageSize = 50

type HistoryService interface {
	List(ctx context.Context, sess *models.Session) ([]*models.ActionHistory, error)
}

type historyService struct {
	h repository.HistoryRepository
}

func NewHistoryService(h repository.HistoryRepository) HistoryService {
	return &historyService{h: h}
}

// List returns the latest actions taken on the active brand, newest first.
func (s *historyService) List(ctx context.Context, sess *models.Session) ([]*models.ActionHistory, error) {
	if sess.ActiveBrandID == "" {
		return nil, errNoActiveBrand
	}
	entries, err := s.h.ListByBrandID(ctx, sess.ActiveBrandID, historyPageSize)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.ActionHistory{}
	}
	return entries, nil
}
