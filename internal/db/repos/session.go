// Package repos provides context-aware repositories over the gorm models.
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fabforge/fabquote/internal/db/models"
)

// SessionRepository provides access to quote-session database operations
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new quote session in the database
func (r *SessionRepository) Create(ctx context.Context, session *models.QuoteSession) error {
	if session.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	return r.db.WithContext(ctx).Create(session).Error
}

// GetBySessionID retrieves a session by its public session id
func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	var session models.QuoteSession
	err := r.db.WithContext(ctx).
		Where(&models.QuoteSession{SessionID: sessionID}).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Update saves the full session record
func (r *SessionRepository) Update(ctx context.Context, session *models.QuoteSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// UpdateStage updates only the stage and status of a session
func (r *SessionRepository) UpdateStage(ctx context.Context, sessionID string, stage models.SessionStage, status models.SessionStatus) error {
	return r.db.WithContext(ctx).Model(&models.QuoteSession{}).
		Where(&models.QuoteSession{SessionID: sessionID}).
		Updates(map[string]interface{}{
			"stage":  stage,
			"status": status,
		}).Error
}

// List returns sessions ordered newest first
func (r *SessionRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.QuoteSession, error) {
	var sessions []models.QuoteSession
	db := r.db.WithContext(ctx)
	if !opts.IncludeDeleted {
		db = db.Unscoped().Where("deleted_at IS NULL")
	}
	err := db.Model(&models.QuoteSession{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order(models.SessionCreatedAtField + " DESC").
		Find(&sessions).Error
	return sessions, err
}

// Count returns the number of sessions
func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.QuoteSession{}).Count(&count).Error
	return count, err
}
