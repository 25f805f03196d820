package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"go.uber.org/zap"
)

// ContentAPI is the remote brand and post API. It owns all persisted state;
// callers only hold copies.
type ContentAPI interface {
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	CreateBrand(ctx context.Context, bc *transfer.BrandCreation) (*transfer.BrandCreated, error)
	DeleteBrand(ctx context.Context, brandID string) error
	ListPosts(ctx context.Context, brandID string) ([]*models.Post, error)
	PlanPost(ctx context.Context, plan *transfer.PostPlan) (*models.Post, error)
	GeneratePost(ctx context.Context, postID string) (*models.Post, error)
	GenerateMonth(ctx context.Context, req *transfer.MonthGeneration) (*transfer.MonthGenerated, error)
	ApprovePost(ctx context.Context, postID string, approval *transfer.PostApproval) (*models.Post, error)
	ScheduleWeek(ctx context.Context, req *transfer.WeeklySchedule) (*transfer.WeeklyScheduled, error)
	Status(ctx context.Context) (*transfer.APIStatus, error)
}

type contentAPI struct {
	*httpClient
	rootURL string
}

func NewContentAPI(baseURL string, timeout, generationTimeout time.Duration, log *zap.Logger) ContentAPI {
	return &contentAPI{
		httpClient: newHTTPClient(baseURL, timeout, generationTimeout, log),
		rootURL:    rootOf(baseURL),
	}
}

// rootOf strips the trailing /api segment: the status route sits at the host root.
func rootOf(baseURL string) string {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return baseURL
	}
	u.Path = strings.TrimSuffix(u.Path, "/api")
	return strings.TrimRight(u.String(), "/")
}

func (c *contentAPI) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	var brands []*models.Brand
	if err := c.do(ctx, c.fast, http.MethodGet, "/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *contentAPI) CreateBrand(ctx context.Context, bc *transfer.BrandCreation) (*transfer.BrandCreated, error) {
	var created transfer.BrandCreated
	if err := c.do(ctx, c.fast, http.MethodPost, "/brands", bc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *contentAPI) DeleteBrand(ctx context.Context, brandID string) error {
	return c.do(ctx, c.fast, http.MethodDelete, "/brands/"+escape(brandID), nil, nil)
}

func (c *contentAPI) ListPosts(ctx context.Context, brandID string) ([]*models.Post, error) {
	var posts []*models.Post
	path := fmt.Sprintf("/brands/%s/posts", escape(brandID))
	if err := c.do(ctx, c.fast, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *contentAPI) PlanPost(ctx context.Context, plan *transfer.PostPlan) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, c.fast, http.MethodPost, "/posts/plan", plan, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *contentAPI) GeneratePost(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%s/generate", escape(postID))
	if err := c.do(ctx, c.slow, http.MethodPost, path, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *contentAPI) GenerateMonth(ctx context.Context, req *transfer.MonthGeneration) (*transfer.MonthGenerated, error) {
	var res transfer.MonthGenerated
	if err := c.do(ctx, c.slow, http.MethodPost, "/posts/generate_month", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *contentAPI) ApprovePost(ctx context.Context, postID string, approval *transfer.PostApproval) (*models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%s/approve", escape(postID))
	if err := c.do(ctx, c.fast, http.MethodPost, path, approval, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *contentAPI) ScheduleWeek(ctx context.Context, req *transfer.WeeklySchedule) (*transfer.WeeklyScheduled, error) {
	var res transfer.WeeklyScheduled
	if err := c.do(ctx, c.slow, http.MethodPost, "/schedule", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *contentAPI) Status(ctx context.Context) (*transfer.APIStatus, error) {
	root := &httpClient{baseURL: c.rootURL, fast: c.fast, slow: c.slow, log: c.log}
	var status transfer.APIStatus
	if err := root.do(ctx, c.fast, http.MethodGet, "/", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
