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

type BrandService interface {
	List(ctx context.Context, sess *models.Session) view.DirectoryView
	Create(ctx context.Context, sess *models.Session, bc *transfer.BrandCreation) (*transfer.BrandCreated, error)
	Delete(ctx context.Context, sess *models.Session, brandID string, confirmed bool) error
}

type brandService struct {
	api       client.ContentAPI
	snapshots repository.SnapshotRepository
	guard     *InFlight
	rec       recorder
	log       *zap.Logger
}

func NewBrandService(
	api client.ContentAPI,
	snapshots repository.SnapshotRepository,
	history repository.HistoryRepository,
	guard *InFlight,
	log *zap.Logger) BrandService {
	return &brandService{
		api:       api,
		snapshots: snapshots,
		guard:     guard,
		rec:       recorder{h: history, log: log},
		log:       log,
	}
}

// List never fails: an unreachable or failing API yields the offline view.
func (s *brandService) List(ctx context.Context, sess *models.Session) view.DirectoryView {
	brands, err := s.api.ListBrands(ctx)
	if err != nil {
		s.log.Warn("brand directory unavailable", zap.Error(err))
		return view.OfflineDirectory()
	}
	return view.BuildDirectory(brands, sess.ActiveBrandID)
}

func (s *brandService) Create(ctx context.Context, sess *models.Session, bc *transfer.BrandCreation) (*transfer.BrandCreated, error) {
	if bc == nil {
		return nil, newValidationError("", "brand details are missing")
	}
	bc.Name = strings.TrimSpace(bc.Name)
	bc.Industry = strings.TrimSpace(bc.Industry)
	bc.Website = strings.TrimSpace(bc.Website)
	bc.PhoneNumber = strings.TrimSpace(bc.PhoneNumber)
	bc.FacebookPageID = strings.TrimSpace(bc.FacebookPageID)
	bc.FacebookAccessToken = strings.TrimSpace(bc.FacebookAccessToken)
	if bc.ToneVoice = strings.TrimSpace(bc.ToneVoice); bc.ToneVoice == "" {
		bc.ToneVoice = models.DefaultToneVoice
	}

	if err := validateStruct(bc); err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionCreateBrand))
	if err != nil {
		return nil, err
	}
	defer release()

	created, err := s.api.CreateBrand(ctx, bc)
	s.rec.record(ctx, sess, models.ActionCreateBrand, createdID(created), "", err)
	if err != nil {
		return nil, err
	}

	s.log.Info("brand created", zap.String("brand_id", created.ID), zap.String("name", bc.Name))
	return created, nil
}

func createdID(c *transfer.BrandCreated) string {
	if c == nil {
		return ""
	}
	return c.ID
}

// Delete removes the brand remotely (its posts go with it) and resets the
// session to the unselected state.
func (s *brandService) Delete(ctx context.Context, sess *models.Session, brandID string, confirmed bool) error {
	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		return newValidationError("brand_id", "is required")
	}
	if !confirmed {
		return newValidationError("confirm", "deleting a brand must be confirmed")
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionDeleteBrand, brandID))
	if err != nil {
		return err
	}
	defer release()

	err = s.api.DeleteBrand(ctx, brandID)
	s.rec.record(ctx, sess, models.ActionDeleteBrand, brandID, "", err)
	if err != nil {
		return err
	}

	sess.Clear()
	if err := s.snapshots.Drop(ctx, sess.ID); err != nil {
		s.log.Warn("failed to drop calendar snapshot", zap.String("session_id", sess.ID), zap.Error(err))
	}
	s.log.Info("brand deleted", zap.String("brand_id", brandID))
	return nil
}
