package repos

import (
	"encoding/json"

	"github.com/fabforge/fabquote/internal/db/models"
)

func (s *DBRepositoryTestSuite) TestCreateSessionRequiresSessionID() {
	err := s.sessionRepo.Create(s.ctx, &models.QuoteSession{JobType: "custom_fab"})
	s.Require().Error(err)
	s.Contains(err.Error(), "session_id is required")
}

func (s *DBRepositoryTestSuite) TestGetBySessionID() {
	created := s.createTestSession()

	got, err := s.sessionRepo.GetBySessionID(s.ctx, created.SessionID)
	s.Require().NoError(err)
	s.Equal(created.JobType, got.JobType)
	s.Equal(models.SessionStageClarify, got.Stage)
	s.Equal(models.SessionStatusActive, got.Status)

	var answers map[string]string
	s.Require().NoError(json.Unmarshal(got.Answers, &answers))
	s.Equal("40", answers["linear_feet"])
}

func (s *DBRepositoryTestSuite) TestGetBySessionIDNotFound() {
	_, err := s.sessionRepo.GetBySessionID(s.ctx, "no-such-session")
	s.Require().Error(err)
	s.Contains(err.Error(), "session not found")
}

func (s *DBRepositoryTestSuite) TestUpdateSessionAnswers() {
	session := s.createTestSession()

	answers, err := json.Marshal(map[string]string{"linear_feet": "40", "height": "42", "infill": "Cable"})
	s.Require().NoError(err)
	session.Answers = answers
	s.Require().NoError(s.sessionRepo.Update(s.ctx, session))

	got, err := s.sessionRepo.GetBySessionID(s.ctx, session.SessionID)
	s.Require().NoError(err)
	var updated map[string]string
	s.Require().NoError(json.Unmarshal(got.Answers, &updated))
	s.Equal("Cable", updated["infill"])
}

func (s *DBRepositoryTestSuite) TestUpdateStage() {
	session := s.createTestSession()

	err := s.sessionRepo.UpdateStage(s.ctx, session.SessionID, models.SessionStageOutput, models.SessionStatusComplete)
	s.Require().NoError(err)

	got, err := s.sessionRepo.GetBySessionID(s.ctx, session.SessionID)
	s.Require().NoError(err)
	s.Equal(models.SessionStageOutput, got.Stage)
	s.Equal(models.SessionStatusComplete, got.Status)
}

func (s *DBRepositoryTestSuite) TestListSessions() {
	s.createTestSession()
	s.createTestSession()

	sessions, err := s.sessionRepo.List(s.ctx, &models.ListOptions{Limit: models.DefaultLimit})
	s.Require().NoError(err)
	s.Len(sessions, 2)

	count, err := s.sessionRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *DBRepositoryTestSuite) TestSessionStageRoundTrip() {
	for _, name := range []string{"intake", "clarify", "calculate", "estimate", "price", "output"} {
		stage, err := models.ParseSessionStage(name)
		s.Require().NoError(err)
		s.Equal(name, stage.String())
	}
	_, err := models.ParseSessionStage("shipping")
	s.Require().Error(err)
}
