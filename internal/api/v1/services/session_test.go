package services

import (
	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/types"
)

func (s *ServiceTestSuite) TestStartSessionWithOverride() {
	started, err := s.sessions.StartSession(s.ctx, "need a deck railing", "straight_railing")
	s.Require().NoError(err)

	s.NotEmpty(started.SessionID)
	s.Equal(types.JobTypeStraightRailing, started.JobType)
	s.Equal(1.0, started.DetectionConfidence)
	s.True(started.TreeLoaded)
	s.NotEmpty(started.NextQuestions)
	s.False(started.Completion.IsComplete)
}

func (s *ServiceTestSuite) TestStartSessionDetectsByKeywords() {
	started, err := s.sessions.StartSession(s.ctx, "I need a cantilever sliding gate for my driveway", "")
	s.Require().NoError(err)

	s.Equal(types.JobTypeCantileverGate, started.JobType)
	s.InDelta(0.9, started.DetectionConfidence, 0.0001)
	s.False(started.Ambiguous)
}

func (s *ServiceTestSuite) TestStartSessionRejectsUnknownOverride() {
	_, err := s.sessions.StartSession(s.ctx, "something", "submarine")
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid job type override")
}

func (s *ServiceTestSuite) TestSubmitAnswersAdvancesToCalculate() {
	started, err := s.sessions.StartSession(s.ctx, "deck railing", "straight_railing")
	s.Require().NoError(err)

	partial, err := s.sessions.SubmitAnswers(s.ctx, started.SessionID, map[string]string{"linear_feet": "40"})
	s.Require().NoError(err)
	s.Equal("clarify", partial.Stage)
	s.False(partial.Completion.IsComplete)

	full, err := s.sessions.SubmitAnswers(s.ctx, started.SessionID, railingAnswers())
	s.Require().NoError(err)
	s.Equal("calculate", full.Stage)
	s.True(full.Completion.IsComplete)
	s.Empty(full.Completion.RequiredMissing)
}

func (s *ServiceTestSuite) TestRetractAnswerReopensQuestion() {
	sessionID := s.startRailingSession()

	result, err := s.sessions.RetractAnswer(s.ctx, sessionID, "finish")
	s.Require().NoError(err)
	s.Equal("clarify", result.Stage)
	s.Contains(result.Completion.RequiredMissing, "finish")

	_, err = s.sessions.RetractAnswer(s.ctx, sessionID, "finish")
	s.Require().Error(err)
	s.Contains(err.Error(), "not answered")
}

func (s *ServiceTestSuite) TestStatusReportsAnsweredFields() {
	sessionID := s.startRailingSession()

	status, err := s.sessions.Status(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal("calculate", status.Stage)
	s.Equal("active", status.Status)
	s.Equal("40", status.AnsweredFields["linear_feet"])
	s.True(status.Completion.IsComplete)
}

func (s *ServiceTestSuite) TestStatusNotFound() {
	_, err := s.sessions.Status(s.ctx, "no-such-session")
	s.Require().Error(err)
	s.Contains(err.Error(), "session not found")
}

func (s *ServiceTestSuite) TestCalculateRequiresCompleteSession() {
	started, err := s.sessions.StartSession(s.ctx, "deck railing", "straight_railing")
	s.Require().NoError(err)

	_, err = s.sessions.Calculate(s.ctx, started.SessionID)
	s.Require().Error(err)
	wrongStage, ok := err.(*WrongStageError)
	s.Require().True(ok)
	s.Equal(models.SessionStageClarify, wrongStage.Stage)
}

func (s *ServiceTestSuite) TestCalculateStoresBOMAndAdvances() {
	sessionID := s.startRailingSession()

	result, err := s.sessions.Calculate(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal("estimate", result.Stage)
	s.NotEmpty(result.BOM.Items)
	s.Greater(result.BOM.TotalWeightLbs, 0.0)

	// Calculation is one-shot; the stage has moved on.
	_, err = s.sessions.Calculate(s.ctx, sessionID)
	s.Require().Error(err)
}

func (s *ServiceTestSuite) TestEstimateRunsRuleFallbackWithAIDisabled() {
	sessionID := s.startRailingSession()
	_, err := s.sessions.Calculate(s.ctx, sessionID)
	s.Require().NoError(err)

	result, err := s.sessions.Estimate(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Equal("price", result.Stage)
	s.Equal("rule_based", result.Labor.Method)
	s.Greater(result.TotalLaborHours, 0.0)
	s.Greater(result.TotalLaborCost, 0.0)
	s.Equal(types.FinishPowderCoat, result.Finishing.Method)
	s.True(result.Finishing.Outsourced)
}

func (s *ServiceTestSuite) TestEstimateBeforeCalculateFails() {
	sessionID := s.startRailingSession()

	_, err := s.sessions.Estimate(s.ctx, sessionID)
	s.Require().Error(err)
	wrongStage, ok := err.(*WrongStageError)
	s.Require().True(ok)
	s.Equal(models.SessionStageCalculate, wrongStage.Stage)
}

func (s *ServiceTestSuite) TestPriceCreatesQuoteAndClosesSession() {
	priced := s.pricedRailingQuote()

	s.NotZero(priced.QuoteID)
	s.Contains(priced.QuoteNumber, "FQ-")
	s.Equal(15, priced.Quote.SelectedMarkup)
	s.Greater(priced.Quote.GrandTotal, priced.Quote.Subtotal)

	status, err := s.sessions.Status(s.ctx, priced.SessionID)
	s.Require().NoError(err)
	s.Equal("output", status.Stage)
	s.Equal("complete", status.Status)

	// A closed session no longer accepts answers.
	_, err = s.sessions.SubmitAnswers(s.ctx, priced.SessionID, map[string]string{"height": "42"})
	s.Require().Error(err)
}

func (s *ServiceTestSuite) TestAttachPhotoMergesNonAuthoritatively() {
	started, err := s.sessions.StartSession(s.ctx, "deck railing", "straight_railing")
	s.Require().NoError(err)
	_, err = s.sessions.SubmitAnswers(s.ctx, started.SessionID, map[string]string{"height": "36"})
	s.Require().NoError(err)

	s.stub.Responses = []string{`{"extracted_fields": {"height": "42", "material": "Mild steel"}, "photo_observations": "rust at post bases", "material_detected": "mild_steel", "damage_assessment": "N/A"}`}

	result, err := s.sessions.AttachPhoto(s.ctx, started.SessionID, []byte{0xFF, 0xD8}, "image/jpeg", "back yard")
	s.Require().NoError(err)

	// The text answer wins; only the new field merges.
	s.Equal([]string{"material"}, result.MergedFields)

	status, err := s.sessions.Status(s.ctx, started.SessionID)
	s.Require().NoError(err)
	s.Equal("36", status.AnsweredFields["height"])
	s.Equal("Mild steel", status.AnsweredFields["material"])
	s.Contains(status.PhotoObservations, "rust at post bases")
}
