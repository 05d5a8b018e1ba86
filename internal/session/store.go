package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoSession is returned when no login is stored. Gateway calls that
// require authentication fail fast on it without a network round-trip.
var ErrNoSession = errors.New("no active session")

// Session is the persisted login context: the bearer token plus the
// minimal user metadata the console displays. This is the entire local
// persistence surface of the client.
type Session struct {
	Token     string
	UserName  string
	UserRole  string
	ExpiresAt *time.Time
}

// Store persists the session in the local database. It is the single read
// path for the token; Clear is the logout invalidation hook.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStore creates a session store
func NewStore(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Current returns the stored session, or ErrNoSession when none exists.
// Every gateway call reads this fresh rather than caching the token, so a
// logout/login is reflected on the next call.
func (s *Store) Current() (*Session, error) {
	var sess Session
	var expiresAt sql.NullTime

	err := s.db.QueryRow(`
		SELECT token, user_name, user_role, token_expires_at
		FROM session
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&sess.Token, &sess.UserName, &sess.UserRole, &expiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	if expiresAt.Valid {
		sess.ExpiresAt = &expiresAt.Time
	}

	return &sess, nil
}

// Save replaces any stored session with the given one
func (s *Store) Save(sess Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	var expiresAt interface{}
	if sess.ExpiresAt != nil {
		expiresAt = *sess.ExpiresAt
	}

	_, err = tx.Exec(`
		INSERT INTO session (id, token, user_name, user_role, token_expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), sess.Token, sess.UserName, sess.UserRole, expiresAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Session saved",
		zap.String("user_name", sess.UserName),
		zap.String("user_role", sess.UserRole),
	)

	return nil
}

// Clear removes the stored session (logout)
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("Session cleared")
	return nil
}

// TokenExpiry decodes the exp claim of a JWT bearer token without
// verifying the signature. Display metadata only; never used to
// authorize. Returns nil for opaque or claimless tokens.
func TokenExpiry(token string) *time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	t := exp.Time
	return &t
}
