package repos

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fabforge/fabquote/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	sessionRepo *SessionRepository
	quoteRepo   *QuoteRepository
	actualRepo  *HistoricalActualRepository
}

func (s *DBRepositoryTestSuite) SetupTest() {
	// Create new in-memory database with JSON support
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_json=1"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(&models.QuoteSession{}, &models.Quote{}, &models.HistoricalActual{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.sessionRepo = NewSessionRepository(s.db)
	s.quoteRepo = NewQuoteRepository(s.db)
	s.actualRepo = NewHistoricalActualRepository(s.db)
	s.ctx = context.Background()
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) createTestSession() *models.QuoteSession {
	answers, err := json.Marshal(map[string]string{"linear_feet": "40", "height": "36"})
	s.Require().NoError(err)

	session := &models.QuoteSession{
		SessionID:   uuid.New().String(),
		JobType:     "straight_railing",
		Stage:       models.SessionStageClarify,
		Status:      models.SessionStatusActive,
		Description: "40 feet of deck railing with vertical pickets",
		Answers:     answers,
		CreatedAt:   time.Now(),
	}
	err = s.sessionRepo.Create(s.ctx, session)
	s.Require().NoError(err)
	return session
}

func (s *DBRepositoryTestSuite) createTestQuote() *models.Quote {
	priced, err := json.Marshal(map[string]interface{}{"subtotal": 4200.00, "grand_total": 4830.00})
	s.Require().NoError(err)

	quote := &models.Quote{
		SessionID:      uuid.New().String(),
		JobType:        "cantilever_gate",
		Status:         models.QuoteStatusDraft,
		SelectedMarkup: 15,
		Subtotal:       4200.00,
		GrandTotal:     4830.00,
		Priced:         priced,
		CreatedAt:      time.Now(),
	}
	err = s.quoteRepo.Create(s.ctx, quote)
	s.Require().NoError(err)
	return quote
}

// TestDBRepository runs the test suite for the repositories to verify no panic
func TestDBRepository(t *testing.T) {
	suite.Run(t, new(DBRepositoryTestSuite))
}
