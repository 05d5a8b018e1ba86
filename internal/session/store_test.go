package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/studiofront/designer-console/internal/database"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "console.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db.DB, zap.NewNop())
}

func TestCurrentWithoutSession(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Current on empty store = %v, want ErrNoSession", err)
	}
}

func TestSaveAndCurrent(t *testing.T) {
	store := newTestStore(t)
	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	if err := store.Save(Session{
		Token:     "tok-abc",
		UserName:  "Mara",
		UserRole:  "designer",
		ExpiresAt: &expires,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sess, err := store.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if sess.Token != "tok-abc" || sess.UserName != "Mara" || sess.UserRole != "designer" {
		t.Errorf("unexpected session: %+v", sess)
	}
	if sess.ExpiresAt == nil || !sess.ExpiresAt.UTC().Truncate(time.Second).Equal(expires) {
		t.Errorf("expiry not preserved: %v, want %v", sess.ExpiresAt, expires)
	}
}

func TestSaveReplacesPreviousSession(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(Session{Token: "first", UserName: "Mara", UserRole: "designer"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(Session{Token: "second", UserName: "Noor", UserRole: "admin"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	sess, err := store.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if sess.Token != "second" || sess.UserName != "Noor" {
		t.Errorf("stale session survived replacement: %+v", sess)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(Session{Token: "tok", UserName: "Mara", UserRole: "designer"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Current after Clear = %v, want ErrNoSession", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	got := TokenExpiry(signed)
	if got == nil || !got.Equal(exp) {
		t.Errorf("TokenExpiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	if got := TokenExpiry("not-a-jwt"); got != nil {
		t.Errorf("TokenExpiry on opaque token = %v, want nil", got)
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if got := TokenExpiry(noExp); got != nil {
		t.Errorf("TokenExpiry without exp claim = %v, want nil", got)
	}
}
