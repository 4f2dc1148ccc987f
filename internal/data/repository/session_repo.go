package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"game-catalog/internal/data/entity"
	"game-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionRepository stores the opaque bearer tokens issued at login.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindValidSession returns nil, nil for unknown, revoked or expired tokens.
	FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) (int64, error)
	// CleanExpiredSessions deletes sessions that expired or were revoked before cutoff.
	CleanExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

const sessionColumns = `id, user_id, token, user_agent, ip_address, expires_at, revoked_at, created_at`

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES (@id, @user_id, @token, @user_agent, @ip_address, @expires_at, NULL, @created_at)
	`

	_, err := r.db.Exec(ctx, query, pgx.NamedArgs{
		"id":         session.ID,
		"user_id":    session.UserID,
		"token":      session.Token,
		"user_agent": session.UserAgent,
		"ip_address": session.IPAddress,
		"expires_at": session.ExpiresAt,
		"created_at": session.CreatedAt,
	})
	if err != nil {
		r.log.Error("Session not stored", zap.Error(err), zap.String("user_id", session.UserID.String()))
		return fmt.Errorf("session for %s: %w", session.UserID, classifyPgError(err))
	}

	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()
	`

	rows, err := r.db.Query(ctx, query, token)
	if err != nil {
		r.log.Error("Session lookup failed", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	session, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[entity.Session])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Session scan failed", zap.Error(err))
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`, token)
	if err != nil {
		r.log.Error("Session revoke failed", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session: %w", ErrNotFound)
	}
	return nil
}

func (r *sessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	if err != nil {
		r.log.Error("Revoking user sessions failed", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("revoke sessions of %s: %w", userID, err)
	}

	return result.RowsAffected(), nil
}

func (r *sessionRepository) CleanExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM sessions WHERE expires_at < $1 OR revoked_at < $1`, cutoff)
	if err != nil {
		r.log.Error("Session purge failed", zap.Error(err))
		return 0, fmt.Errorf("purge sessions: %w", err)
	}

	return result.RowsAffected(), nil
}
