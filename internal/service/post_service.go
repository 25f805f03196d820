package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"github.com/maheshrc27/brand-engine/internal/view"
	"github.com/maheshrc27/brand-engine/pkg/imaging"
	"github.com/maheshrc27/brand-engine/pkg/utils"
	"go.uber.org/zap"
)

// MonthBatchSize is how many posts the server drafts per monthly run.
const MonthBatchSize = 12

const (
	msgPlanFailed     = "Planning failed"
	msgGenerateFailed = "Generation Failed"
	msgMonthFailed    = "Monthly generation failed or timed out"
	msgWeekFailed     = "Weekly scheduling failed"
	msgApproveFailed  = "Approval failed"
)

var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {},
}

type PostService interface {
	Plan(ctx context.Context, sess *models.Session, topic, scheduledDate string) (*models.Post, error)
	Generate(ctx context.Context, sess *models.Session, postID string) (*models.Post, error)
	GenerateMonth(ctx context.Context, sess *models.Session) (*transfer.MonthGenerated, error)
	ScheduleWeek(ctx context.Context, sess *models.Session, weekFocus string, topics []string) (*transfer.WeeklyScheduled, error)
	Approve(ctx context.Context, sess *models.Session, postID string, image []byte, scheduledDate string, loc *time.Location) (*view.ApprovalView, error)
}

type postService struct {
	api     client.ContentAPI
	archive ArtworkArchive
	guard   *InFlight
	rec     recorder
	log     *zap.Logger
}

func NewPostService(
	api client.ContentAPI,
	archive ArtworkArchive,
	history repository.HistoryRepository,
	guard *InFlight,
	log *zap.Logger) PostService {
	return &postService{
		api:     api,
		archive: archive,
		guard:   guard,
		rec:     recorder{h: history, log: log},
		log:     log,
	}
}

// Plan records a topic and date for the active brand. The date goes out as
// the viewer entered it.
func (s *postService) Plan(ctx context.Context, sess *models.Session, topic, scheduledDate string) (*models.Post, error) {
	plan := &transfer.PostPlan{
		BrandID:       sess.ActiveBrandID,
		Topic:         strings.TrimSpace(topic),
		ScheduledDate: strings.TrimSpace(scheduledDate),
	}
	if plan.BrandID == "" {
		return nil, errNoActiveBrand
	}
	if err := validateStruct(plan); err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionPlan))
	if err != nil {
		return nil, err
	}
	defer release()

	post, err := s.api.PlanPost(ctx, plan)
	s.rec.record(ctx, sess, models.ActionPlan, plan.BrandID, postIDOf(post), err)
	if err != nil {
		return nil, failed(msgPlanFailed, err)
	}

	s.log.Info("post planned", zap.String("brand_id", plan.BrandID), zap.String("post_id", post.ID))
	return post, nil
}

// Generate asks the server to draft caption and visual idea. Repeating it
// overwrites the previous draft.
func (s *postService) Generate(ctx context.Context, sess *models.Session, postID string) (*models.Post, error) {
	postID = s.targetPost(sess, postID)
	if postID == "" {
		return nil, newValidationError("post_id", "is required")
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionGenerate, postID))
	if err != nil {
		return nil, err
	}
	defer release()

	post, err := s.api.GeneratePost(ctx, postID)
	s.rec.record(ctx, sess, models.ActionGenerate, sess.ActiveBrandID, postID, err)
	if err != nil {
		return nil, failed(msgGenerateFailed, err)
	}

	sess.ActivePostID = postID
	return post, nil
}

// GenerateMonth drafts a fixed batch of posts for the active brand. A failure
// says nothing about how many posts were created.
func (s *postService) GenerateMonth(ctx context.Context, sess *models.Session) (*transfer.MonthGenerated, error) {
	if sess.ActiveBrandID == "" {
		return nil, errNoActiveBrand
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionGenerateMonth))
	if err != nil {
		return nil, err
	}
	defer release()

	s.log.Info("generating month", zap.String("brand_id", sess.ActiveBrandID), zap.Int("batch", MonthBatchSize))

	res, err := s.api.GenerateMonth(ctx, &transfer.MonthGeneration{BrandID: sess.ActiveBrandID})
	s.rec.record(ctx, sess, models.ActionGenerateMonth, sess.ActiveBrandID, "", err)
	if err != nil {
		return nil, failed(msgMonthFailed, err)
	}
	return res, nil
}

func (s *postService) ScheduleWeek(ctx context.Context, sess *models.Session, weekFocus string, topics []string) (*transfer.WeeklyScheduled, error) {
	if sess.ActiveBrandID == "" {
		return nil, errNoActiveBrand
	}

	req := &transfer.WeeklySchedule{
		BrandID:   sess.ActiveBrandID,
		WeekFocus: strings.TrimSpace(weekFocus),
		Topics:    make([]string, 0, len(topics)),
	}
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			req.Topics = append(req.Topics, t)
		}
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionScheduleWeek))
	if err != nil {
		return nil, err
	}
	defer release()

	res, err := s.api.ScheduleWeek(ctx, req)
	s.rec.record(ctx, sess, models.ActionScheduleWeek, req.BrandID, "", err)
	if err != nil {
		return nil, failed(msgWeekFailed, err)
	}

	s.log.Info("week scheduled", zap.String("brand_id", req.BrandID), zap.Int("generated", res.GeneratedCount))
	return res, nil
}

// Approve compresses the artwork, pins the schedule to a UTC instant and
// queues the post for publishing.
func (s *postService) Approve(ctx context.Context, sess *models.Session, postID string, image []byte, scheduledDate string, loc *time.Location) (*view.ApprovalView, error) {
	postID = s.targetPost(sess, postID)
	if postID == "" {
		return nil, newValidationError("post_id", "is required")
	}
	if len(image) == 0 {
		return nil, newValidationError("image", "is required")
	}
	scheduledDate = strings.TrimSpace(scheduledDate)
	if scheduledDate == "" {
		return nil, newValidationError("scheduled_date", "is required")
	}

	at, err := utils.LocalInputToUTC(scheduledDate, loc)
	if err != nil {
		return nil, newValidationError("scheduled_date", "is not a valid date and time")
	}
	scheduledUTC := at.Format(time.RFC3339)

	release, err := s.guard.Acquire(actionKey(sess.ID, models.ActionApprove, postID))
	if err != nil {
		return nil, err
	}
	defer release()

	if err := checkImageType(image); err != nil {
		return nil, err
	}
	compressed, err := imaging.Compress(image)
	if errors.Is(err, imaging.ErrImageTooLarge) {
		return nil, newValidationError("image", "is too large")
	}
	if err != nil {
		return nil, newValidationError("image", "could not be read")
	}

	artworkURL, err := s.archive.Archive(ctx, sess.ActiveBrandID, postID, compressed.Data, "image/jpeg")
	if err != nil {
		s.log.Warn("artwork archive failed", zap.String("post_id", postID), zap.Error(err))
	}

	approval := &transfer.PostApproval{
		ImageBase64:   base64.StdEncoding.EncodeToString(compressed.Data),
		ScheduledDate: scheduledUTC,
	}
	post, err := s.api.ApprovePost(ctx, postID, approval)
	s.rec.record(ctx, sess, models.ActionApprove, sess.ActiveBrandID, postID, err)
	if err != nil {
		if se, ok := client.AsStatusError(err); ok {
			return nil, failed(fmt.Sprintf("%d: %s", se.StatusCode, se.Body), err)
		}
		return nil, failed(msgApproveFailed, err)
	}

	s.log.Info("post approved",
		zap.String("post_id", postID),
		zap.String("scheduled_date", scheduledUTC),
		zap.Int("width", compressed.Width),
		zap.Int("height", compressed.Height))

	sess.ActivePostID = ""
	return view.BuildApproval(post, postID, scheduledUTC, artworkURL, at, loc), nil
}

// targetPost falls back to the post last opened in the session.
func (s *postService) targetPost(sess *models.Session, postID string) string {
	if postID = strings.TrimSpace(postID); postID != "" {
		return postID
	}
	return sess.ActivePostID
}

func checkImageType(image []byte) error {
	kind, err := filetype.Match(image)
	if err != nil || kind == types.Unknown {
		return newValidationError("image", "unsupported file type")
	}
	if _, ok := allowedImageTypes[kind.Extension]; !ok {
		return newValidationError("image", fmt.Sprintf("file type %s is not allowed", kind.Extension))
	}
	return nil
}

func postIDOf(p *models.Post) string {
	if p == nil {
		return ""
	}
	return p.ID
}
