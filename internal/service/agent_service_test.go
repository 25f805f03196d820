package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/maheshrc27/brand-engine/internal/transfer"
	"github.com/maheshrc27/brand-engine/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newAgentService(t *testing.T, handler http.HandlerFunc) (AgentService, *InFlight) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := zaptest.NewLogger(t)
	guard := NewInFlight()
	api := client.NewAgentAPI(srv.URL, time.Second, log)
	return NewAgentService(api, repository.NewNopHistoryRepository(), guard, log), guard
}

func brief() *transfer.AgentBrief {
	return &transfer.AgentBrief{ClientName: "Acme", Industry: "Retail", WebsiteURL: "https://acme.test"}
}

func TestAgentSubmit_Loaded(t *testing.T) {
	svc, _ := newAgentService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate", r.URL.Path)
		var got transfer.AgentBrief
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Acme", got.ClientName)
		_, _ = io.WriteString(w, `{"week_focus":"Spring","client_name":"Acme","cards":[{"day":"Monday","topic":"Teaser","caption":"c","visual_idea":"v"}]}`)
	})

	v, err := svc.Submit(context.Background(), &models.Session{ID: "s1"}, brief())
	require.NoError(t, err)
	assert.Equal(t, view.AgentLoaded, v.State)
	assert.Equal(t, "Spring", v.WeekFocus)
	require.Len(t, v.Cards, 1)
	assert.Equal(t, "Teaser", v.Cards[0].Topic)
}

func TestAgentSubmit_FailureIsErrorView(t *testing.T) {
	svc, _ := newAgentService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	})

	v, err := svc.Submit(context.Background(), &models.Session{ID: "s1"}, brief())
	require.NoError(t, err)
	assert.Equal(t, view.AgentError, v.State)
	assert.NotEmpty(t, v.Message)
}

func TestAgentSubmit_Validation(t *testing.T) {
	called := false
	svc, _ := newAgentService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	b := brief()
	b.WebsiteURL = " "
	_, err := svc.Submit(context.Background(), &models.Session{ID: "s1"}, b)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "website_url", ve.Field)
	assert.False(t, called)
}

func TestAgentState_ReportsLoading(t *testing.T) {
	svc, guard := newAgentService(t, func(w http.ResponseWriter, r *http.Request) {})
	sess := &models.Session{ID: "s1"}

	assert.Equal(t, view.AgentIdle, svc.State(sess).State)

	release, err := guard.Acquire(actionKey("s1", models.ActionAgent))
	require.NoError(t, err)
	assert.Equal(t, view.AgentLoading, svc.State(sess).State)

	_, err = svc.Submit(context.Background(), sess, brief())
	assert.ErrorIs(t, err, ErrInFlight)

	release()
	assert.Equal(t, view.AgentIdle, svc.State(sess).State)
}
