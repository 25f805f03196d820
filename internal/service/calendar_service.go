package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/maheshrc27/brand-engine/internal/view"
	"go.uber.org/zap"
)

var ErrPostNotFound = errors.New("post not found on the active calendar")

type CalendarService interface {
	Select(ctx context.Context, sess *models.Session, brandID string) (view.CalendarView, error)
	Refresh(ctx context.Context, sess *models.Session) (view.CalendarView, error)
	Details(ctx context.Context, sess *models.Session, postID string, loc *time.Location) (*view.PostDetails, error)
}

type calendarService struct {
	api       client.ContentAPI
	snapshots repository.SnapshotRepository
	log       *zap.Logger
}

func NewCalendarService(api client.ContentAPI, snapshots repository.SnapshotRepository, log *zap.Logger) CalendarService {
	return &calendarService{api: api, snapshots: snapshots, log: log}
}

func (s *calendarService) Select(ctx context.Context, sess *models.Session, brandID string) (view.CalendarView, error) {
	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		return view.EmptyCalendar(), newValidationError("brand_id", "is required")
	}
	sess.SelectBrand(brandID)
	return s.Refresh(ctx, sess)
}

// Refresh re-reads the active brand's posts. Without an active brand it
// returns the empty calendar and makes no request.
func (s *calendarService) Refresh(ctx context.Context, sess *models.Session) (view.CalendarView, error) {
	if sess.ActiveBrandID == "" {
		return view.EmptyCalendar(), nil
	}

	posts, err := s.load(ctx, sess)
	if err != nil {
		return view.EmptyCalendar(), err
	}
	return view.BuildCalendar(sess.ActiveBrandID, posts), nil
}

func (s *calendarService) load(ctx context.Context, sess *models.Session) ([]*models.Post, error) {
	posts, err := s.api.ListPosts(ctx, sess.ActiveBrandID)
	if err != nil {
		return nil, err
	}

	if err := s.snapshots.Save(ctx, sess.ID, sess.ActiveBrandID, posts); err != nil {
		s.log.Warn("failed to cache calendar snapshot",
			zap.String("session_id", sess.ID),
			zap.String("brand_id", sess.ActiveBrandID),
			zap.Error(err))
	}
	return posts, nil
}

// Details reads the post from the last calendar render, refreshing once when
// the snapshot has expired or predates the post.
func (s *calendarService) Details(ctx context.Context, sess *models.Session, postID string, loc *time.Location) (*view.PostDetails, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, newValidationError("post_id", "is required")
	}
	if sess.ActiveBrandID == "" {
		return nil, errNoActiveBrand
	}

	post, err := s.snapshots.Get(ctx, sess.ID, sess.ActiveBrandID, postID)
	if err != nil {
		s.log.Warn("calendar snapshot read failed", zap.String("post_id", postID), zap.Error(err))
	}
	if post == nil {
		posts, err := s.load(ctx, sess)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			if p != nil && p.ID == postID {
				post = p
				break
			}
		}
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	sess.ActivePostID = post.ID
	details := view.BuildDetails(post, loc)
	return &details, nil
}
