package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/memberhub/members-api/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]string
	nextID   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Create(_ context.Context, userID string, _ time.Duration) (string, error) {
	s.nextID++
	id := fmt.Sprintf("sess-%d", s.nextID)
	s.sessions[id] = userID
	return id, nil
}

func (s *stubSessionStore) Get(_ context.Context, sessionID string) (string, error) {
	userID, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return userID, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type stubUserFinder struct {
	users map[string]*domain.User
}

func (r *stubUserFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserFinder) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserFinder) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, nil
}
func (r *stubUserFinder) UpdateLastLogin(_ context.Context, _ string) error      { return nil }
func (r *stubUserFinder) UpdateRole(_ context.Context, _ string, _ bool) error   { return nil }
func (r *stubUserFinder) List(_ context.Context) ([]domain.User, error)          { return nil, nil }

func newSessionFixture() (*SessionStrategy, *stubSessionStore) {
	store := newStubSessionStore()
	users := &stubUserFinder{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "bob", Admin: false},
	}}
	return NewSessionStrategy(store, users, time.Hour, false), store
}

func TestSessionStrategy_RoundTrip(t *testing.T) {
	strategy, _ := newSessionFixture()

	issueCtx, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/log-in", nil))
	if err := strategy.Issue(issueCtx, &domain.User{ID: "u1", Username: "bob"}); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	cookie := issuedCookie(t, rec, SessionCookieName)
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	c, _ := newTestContext(req)

	user, err := strategy.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if user == nil || user.ID != "u1" || user.Username != "bob" {
		t.Fatalf("unexpected resolved identity: %+v", user)
	}
}

func TestSessionStrategy_ResolveAfterDestroy(t *testing.T) {
	strategy, _ := newSessionFixture()

	issueCtx, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/log-in", nil))
	if err := strategy.Issue(issueCtx, &domain.User{ID: "u1", Username: "bob"}); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	cookie := issuedCookie(t, rec, SessionCookieName)

	clearReq := httptest.NewRequest(http.MethodGet, "/log-out", nil)
	clearReq.AddCookie(cookie)
	clearCtx, _ := newTestContext(clearReq)
	if err := strategy.Clear(clearCtx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	c, _ := newTestContext(req)

	if _, err := strategy.Resolve(c); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after destroy, got %v", err)
	}
}

func TestSessionStrategy_ResolveNoProof(t *testing.T) {
	strategy, _ := newSessionFixture()
	c, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

	user, err := strategy.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve returned error for proofless request: %v", err)
	}
	if user != nil {
		t.Fatalf("expected anonymous, got %+v", user)
	}
}

func TestSessionStrategy_ResolveDeletedUser(t *testing.T) {
	strategy, store := newSessionFixture()
	store.sessions["sess-x"] = "gone"

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-x"})
	c, _ := newTestContext(req)

	if _, err := strategy.Resolve(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for dangling session, got %v", err)
	}
}
