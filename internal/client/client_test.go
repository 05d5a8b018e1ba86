package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/studiofront/designer-console/internal/models"
	"github.com/studiofront/designer-console/internal/session"

	"go.uber.org/zap"
)

type staticSession struct {
	sess *session.Session
	err  error
}

func (s *staticSession) Current() (*session.Session, error) {
	return s.sess, s.err
}

func loggedIn(token string) *staticSession {
	return &staticSession{sess: &session.Session{Token: token, UserName: "Mara", UserRole: "admin"}}
}

func newTestClient(t *testing.T, handler http.Handler, sessions SessionSource) (*APIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewAPIClient(srv.URL, srv.URL, 5*time.Second, sessions, zap.NewNop())
	return c, srv
}

func TestNoSessionFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), &staticSession{err: session.ErrNoSession})

	if got := c.ListDesigns(context.Background(), 0, 10); len(got) != 0 {
		t.Errorf("ListDesigns without session returned %d designs", len(got))
	}
	if _, err := c.CreateNotification(context.Background(), models.NotificationDraft{Title: "x"}); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("CreateNotification without session = %v, want ErrNoSession", err)
	}

	if hits.Load() != 0 {
		t.Errorf("server was reached %d times without a session", hits.Load())
	}
}

func TestAuthorizationHeaderIsRawToken(t *testing.T) {
	var gotAuth, gotRequestID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}), loggedIn("tok-123"))

	c.ListDesigns(context.Background(), 0, 10)

	if gotAuth != "tok-123" {
		t.Errorf("Authorization = %q, want raw token %q", gotAuth, "tok-123")
	}
	if strings.HasPrefix(gotAuth, "Bearer ") {
		t.Error("Authorization must not carry a Bearer prefix")
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header missing")
	}
}

func TestReadFailureReturnsEmpty(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), loggedIn("tok"))

	ctx := context.Background()
	if got := c.ListDesigns(ctx, 0, 10); got == nil || len(got) != 0 {
		t.Errorf("ListDesigns on 500 = %v, want empty slice", got)
	}
	if got := c.GetDesign(ctx, "d-1"); got != nil {
		t.Errorf("GetDesign on 500 = %v, want nil", got)
	}
	if got := c.ListNotifications(ctx, 0, 10); len(got) != 0 {
		t.Errorf("ListNotifications on 500 = %v, want empty", got)
	}
	if got := c.ListTrackers(ctx, 0, 20); len(got) != 0 {
		t.Errorf("ListTrackers on 500 = %v, want empty", got)
	}
}

func TestWriteFailurePropagatesTypedError(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusUnauthorized, func(err error) bool {
			var e *AuthError
			return errors.As(err, &e)
		}, "AuthError"},
		{http.StatusBadRequest, func(err error) bool {
			var e *BadRequestError
			return errors.As(err, &e)
		}, "BadRequestError"},
		{http.StatusTooManyRequests, func(err error) bool {
			var e *RateLimitError
			return errors.As(err, &e)
		}, "RateLimitError"},
		{http.StatusBadGateway, func(err error) bool {
			var e *BackendError
			return errors.As(err, &e)
		}, "BackendError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}), loggedIn("tok"))

			err := c.DeleteNotification(context.Background(), "n-1")
			if err == nil || !tt.check(err) {
				t.Errorf("status %d produced %v, want %s", tt.status, err, tt.name)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("login hit %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("login sent Authorization %q", auth)
		}
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(models.LoginResponse{
			Data: models.LoginResult{
				Token: "issued-token",
				User:  models.AuthUser{Name: "Mara", Email: req.Email, Role: "designer"},
			},
		})
	}), &staticSession{err: session.ErrNoSession})

	result, err := c.Login(context.Background(), "mara@studio.test", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token != "issued-token" || result.User.Role != "designer" {
		t.Errorf("unexpected login result: %+v", result)
	}
}

func TestLoginRejectsCustomerRole(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.LoginResponse{
			Data: models.LoginResult{
				Token: "issued-token",
				User:  models.AuthUser{Name: "Sam", Role: models.RoleCustomer},
			},
		})
	}), &staticSession{err: session.ErrNoSession})

	if _, err := c.Login(context.Background(), "sam@example.test", "pw"); err == nil {
		t.Fatal("customer login was accepted")
	}
}

func TestLoginSurfacesBackendMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.LoginResponse{Message: "invalid credentials"})
	}), &staticSession{err: session.ErrNoSession})

	_, err := c.Login(context.Background(), "mara@studio.test", "wrong")
	if err == nil || !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("Login error = %v, want backend message surfaced", err)
	}
}

func TestListNotificationsDecodesBothShapes(t *testing.T) {
	bodies := []string{
		`[{"_id":"n-1","title":"Sale"}]`,
		`{"data":[{"_id":"n-1","title":"Sale"}]}`,
	}

	for _, body := range bodies {
		body := body
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}), loggedIn("tok"))

		got := c.ListNotifications(context.Background(), 0, 10)
		if len(got) != 1 || got[0].ID != "n-1" {
			t.Errorf("body %s decoded to %+v", body, got)
		}
	}
}

func TestSearchProjectsSendsFiltersAndSort(t *testing.T) {
	var captured struct {
		Filters models.ProjectFilters `json:"filters"`
		Sort    map[string]int        `json:"sort"`
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/project/search" {
			t.Errorf("search hit %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(models.ProjectSearchResult{Count: 1, Projects: []models.Project{{ID: "p-1"}}})
	}), loggedIn("tok"))

	result := c.SearchProjects(context.Background(), models.DefaultProjectFilters(), 0, 20)

	if result.Count != 1 || len(result.Projects) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if captured.Sort["createdAt"] != -1 {
		t.Errorf("sort = %v, want createdAt descending", captured.Sort)
	}
	if len(captured.Filters.Status) != 1 || captured.Filters.Status[0] != "active" {
		t.Errorf("default status filter not sent: %+v", captured.Filters)
	}
}

func TestTaskTransitionEndpoints(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(models.TimeTrackerState{ID: "t-1"})
	}), loggedIn("tok"))

	ctx := context.Background()
	if _, err := c.PauseTask(ctx, "t-1"); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if _, err := c.ResumeTask(ctx, "t-1"); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if _, err := c.CompleteTask(ctx, "t-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := c.EndTask(ctx, "t-1"); err != nil {
		t.Fatalf("end: %v", err)
	}

	want := []string{
		"PUT /time-tracker/task/t-1/pause",
		"PUT /time-tracker/task/t-1/resume/session",
		"PUT /time-tracker/task/t-1/done",
		"PUT /time-tracker/state/t-1/end",
	}
	if len(paths) != len(want) {
		t.Fatalf("requests = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, paths[i], want[i])
		}
	}
}
