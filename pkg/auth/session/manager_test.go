package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/northhaul/northhaul-backend/pkg/config"
)

func TestManagerIssueLookupRevoke(t *testing.T) {
	mgr, err := NewManager(NewMemoryStore(), config.SessionConfig{TTL: time.Minute})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	adminID := uuid.New()
	id, err := mgr.Issue(context.Background(), Session{AdminID: adminID, Username: "admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a session id")
	}

	sess, err := mgr.Lookup(context.Background(), id)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sess == nil || sess.AdminID != adminID || sess.Username != "admin" {
		t.Fatalf("unexpected session %+v", sess)
	}

	if err := mgr.Revoke(context.Background(), id); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	sess, err = mgr.Lookup(context.Background(), id)
	if err != nil {
		t.Fatalf("lookup after revoke: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected revoked session to be gone")
	}
}

func TestLookupUnknownIDIsNil(t *testing.T) {
	mgr, _ := NewManager(NewMemoryStore(), config.SessionConfig{TTL: time.Minute})
	sess, err := mgr.Lookup(context.Background(), "nope")
	if err != nil || sess != nil {
		t.Fatalf("expected nil session for unknown id, got %+v %v", sess, err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "sid", Session{Username: "admin"}, -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	sess, err := store.Get(ctx, "sid")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected expired entry to be dropped")
	}
}

func TestNewManagerRequiresStore(t *testing.T) {
	if _, err := NewManager(nil, config.SessionConfig{}); err == nil {
		t.Fatalf("expected error without store")
	}
}
