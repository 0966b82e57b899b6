package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/northhaul/northhaul-backend/pkg/auth/session"
	"github.com/northhaul/northhaul-backend/pkg/config"
)

type stubChecker struct {
	sess *session.Session
	err  error
}

func (s stubChecker) Lookup(ctx context.Context, id string) (*session.Session, error) {
	return s.sess, s.err
}

func TestAdminAuthRejectsMissingCookie(t *testing.T) {
	cfg := config.SessionConfig{CookieName: "northhaul_admin_session"}
	handler := AdminAuth(cfg, stubChecker{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAdminAuthRejectsUnknownSession(t *testing.T) {
	cfg := config.SessionConfig{CookieName: "northhaul_admin_session"}
	handler := AdminAuth(cfg, stubChecker{sess: nil}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "gone"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAdminAuthSeedsContext(t *testing.T) {
	cfg := config.SessionConfig{CookieName: "northhaul_admin_session"}
	adminID := uuid.New()
	checker := stubChecker{sess: &session.Session{AdminID: adminID, Username: "admin"}}

	var captured struct {
		admin    string
		username string
		session  string
	}
	handler := AdminAuth(cfg, checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.admin = AdminIDFromContext(r.Context())
		captured.username = AdminUsernameFromContext(r.Context())
		captured.session = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "sess-1"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.admin != adminID.String() {
		t.Fatalf("expected admin %s got %s", adminID, captured.admin)
	}
	if captured.username != "admin" {
		t.Fatalf("expected username admin got %s", captured.username)
	}
	if captured.session != "sess-1" {
		t.Fatalf("expected session sess-1 got %s", captured.session)
	}
}
