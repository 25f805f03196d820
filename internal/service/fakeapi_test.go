package service

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zaptest"
)

// fakeContentAPI is an in-memory stand-in for the remote content API.
type fakeContentAPI struct {
	mu       sync.Mutex
	brands   []*models.Brand
	posts    map[string][]*models.Post
	nextID   int
	requests int
	fail     map[string]int

	lastApproval *transfer.PostApproval
	lastWeek     *transfer.WeeklySchedule
}

func newFakeContentAPI() *fakeContentAPI {
	return &fakeContentAPI{posts: map[string][]*models.Post{}, fail: map[string]int{}}
}

func (f *fakeContentAPI) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

func (f *fakeContentAPI) findPost(id string) *models.Post {
	for _, posts := range f.posts {
		for _, p := range posts {
			if p.ID == id {
				return p
			}
		}
	}
	return nil
}

func (f *fakeContentAPI) failWith(route string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[route] = status
}

func (f *fakeContentAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeContentAPI) brandList() []*models.Brand {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Brand(nil), f.brands...)
}

func (f *fakeContentAPI) approval() *transfer.PostApproval {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastApproval
}

func (f *fakeContentAPI) week() *transfer.WeeklySchedule {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastWeek
}

func (f *fakeContentAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, transfer.APIStatus{Status: "Brand Engine Online", DB: "connected"})
	})
	mux.HandleFunc("GET /api/brands", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, f.brands)
	})
	mux.HandleFunc("POST /api/brands", func(w http.ResponseWriter, r *http.Request) {
		var bc transfer.BrandCreation
		_ = json.NewDecoder(r.Body).Decode(&bc)
		b := &models.Brand{ID: f.id("b"), Name: bc.Name, Industry: bc.Industry, Website: bc.Website, PhoneNumber: bc.PhoneNumber, ToneVoice: bc.ToneVoice}
		f.brands = append(f.brands, b)
		writeJSON(w, transfer.BrandCreated{ID: b.ID, Name: b.Name})
	})
	mux.HandleFunc("DELETE /api/brands/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		kept := f.brands[:0]
		for _, b := range f.brands {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		f.brands = kept
		delete(f.posts, id)
		writeJSON(w, map[string]string{"message": "Brand and associated posts deleted"})
	})
	mux.HandleFunc("GET /api/brands/{id}/posts", func(w http.ResponseWriter, r *http.Request) {
		posts := f.posts[r.PathValue("id")]
		if posts == nil {
			posts = []*models.Post{}
		}
		writeJSON(w, posts)
	})
	mux.HandleFunc("POST /api/posts/plan", func(w http.ResponseWriter, r *http.Request) {
		var plan transfer.PostPlan
		_ = json.NewDecoder(r.Body).Decode(&plan)
		p := &models.Post{
			ID:            f.id("p"),
			BrandID:       plan.BrandID,
			Topic:         plan.Topic,
			ScheduledDate: plan.ScheduledDate,
			RawStatus:     "Planned",
		}
		f.posts[plan.BrandID] = append(f.posts[plan.BrandID], p)
		writeJSON(w, p)
	})
	mux.HandleFunc("POST /api/posts/generate_month", func(w http.ResponseWriter, r *http.Request) {
		var req transfer.MonthGeneration
		_ = json.NewDecoder(r.Body).Decode(&req)
		start := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		for i := 0; i < MonthBatchSize; i++ {
			f.posts[req.BrandID] = append(f.posts[req.BrandID], &models.Post{
				ID:            f.id("p"),
				BrandID:       req.BrandID,
				Topic:         fmt.Sprintf("Idea %d", i+1),
				ScheduledDate: start.AddDate(0, 0, i*2).Format("2006-01-02T15:04:05"),
				RawStatus:     "Generated",
				Caption:       "caption",
				VisualIdea:    "visual",
			})
		}
		writeJSON(w, transfer.MonthGenerated{Status: "success", GeneratedCount: MonthBatchSize})
	})
	mux.HandleFunc("POST /api/posts/{id}/generate", func(w http.ResponseWriter, r *http.Request) {
		p := f.findPost(r.PathValue("id"))
		if p == nil {
			http.Error(w, `{"detail":"Post not found"}`, http.StatusNotFound)
			return
		}
		p.RawStatus = "Generated"
		p.Caption = "Fresh caption for " + p.Topic
		p.VisualIdea = "Flat lay of " + p.Topic
		writeJSON(w, p)
	})
	mux.HandleFunc("POST /api/posts/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		p := f.findPost(r.PathValue("id"))
		if p == nil {
			http.Error(w, `{"detail":"Post not found"}`, http.StatusNotFound)
			return
		}
		var approval transfer.PostApproval
		_ = json.NewDecoder(r.Body).Decode(&approval)
		f.lastApproval = &approval
		p.RawStatus = "Approved"
		p.ImageBase64 = approval.ImageBase64
		p.ScheduledDate = approval.ScheduledDate
		writeJSON(w, p)
	})
	mux.HandleFunc("POST /api/schedule", func(w http.ResponseWriter, r *http.Request) {
		var req transfer.WeeklySchedule
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.lastWeek = &req
		writeJSON(w, transfer.WeeklyScheduled{Status: "success", GeneratedCount: len(req.Topics)})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests++

		_, pattern := mux.Handler(r)
		if status, ok := f.fail[pattern]; ok {
			http.Error(w, "upstream exploded", status)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type testEnv struct {
	fake      *fakeContentAPI
	api       client.ContentAPI
	snapshots repository.SnapshotRepository
	guard     *InFlight
	brands    BrandService
	calendar  CalendarService
	posts     PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)

	fake := newFakeContentAPI()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	api := client.NewContentAPI(srv.URL+"/api", 2*time.Second, 2*time.Second, log)
	snapshots := repository.NewSnapshotRepository(rdb, time.Hour)
	history := repository.NewNopHistoryRepository()
	guard := NewInFlight()

	return &testEnv{
		fake:      fake,
		api:       api,
		snapshots: snapshots,
		guard:     guard,
		brands:    NewBrandService(api, snapshots, history, guard, log),
		calendar:  NewCalendarService(api, snapshots, log),
		posts:     NewPostService(api, nopArchive{}, history, guard, log),
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 8 {
		for x := 0; x < w; x += 8 {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// headerOnlyPNG is a tiny PNG whose IHDR claims w x h pixels.
func headerOnlyPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := testPNG(t, 1, 1)
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}
