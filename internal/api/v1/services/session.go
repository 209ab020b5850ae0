// Package services implements the quoting pipeline driver. The session
// service is the only code that mutates sessions; every stage transition is
// gated here so out-of-order requests fail before any AI call or write.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fabforge/fabquote/internal/calc"
	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/db/repos"
	"github.com/fabforge/fabquote/internal/finishing"
	"github.com/fabforge/fabquote/internal/labor"
	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/pricing"
	"github.com/fabforge/fabquote/internal/questions"
	"github.com/fabforge/fabquote/internal/types"
)

// WrongStageError reports a pipeline operation arriving out of order.
type WrongStageError struct {
	Stage models.SessionStage
	Want  models.SessionStage
	Hint  string
}

func (e *WrongStageError) Error() string {
	return fmt.Sprintf("session stage is %q, not %q: %s", e.Stage, e.Want, e.Hint)
}

// SessionService provides business logic for quote-session operations
type SessionService struct {
	sessions  *repos.SessionRepository
	quotes    *repos.QuoteRepository
	engine    *questions.Engine
	registry  *calc.Registry
	cuts      *calc.CutListGenerator
	estimator *labor.Estimator
	validator *labor.HistoricalValidator
	pricer    *pricing.Engine
}

// NewSessionService creates a new session service instance
func NewSessionService(
	sessions *repos.SessionRepository,
	quotes *repos.QuoteRepository,
	engine *questions.Engine,
	registry *calc.Registry,
	cuts *calc.CutListGenerator,
	estimator *labor.Estimator,
	validator *labor.HistoricalValidator,
	pricer *pricing.Engine,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		quotes:    quotes,
		engine:    engine,
		registry:  registry,
		cuts:      cuts,
		estimator: estimator,
		validator: validator,
		pricer:    pricer,
	}
}

// StartSessionResult is the response payload for starting a session
type StartSessionResult struct {
	SessionID           string                 `json:"session_id"`
	JobType             types.JobType          `json:"job_type"`
	DetectionConfidence float64                `json:"detection_confidence"`
	Ambiguous           bool                   `json:"ambiguous"`
	TreeLoaded          bool                   `json:"tree_loaded"`
	ExtractedFields     types.AnsweredFields   `json:"extracted_fields"`
	NextQuestions       []types.Question       `json:"next_questions"`
	Completion          types.CompletionStatus `json:"completion"`
}

// AnswerResult is the response payload for answer submission and retraction
type AnswerResult struct {
	SessionID     string                 `json:"session_id"`
	Stage         string                 `json:"stage"`
	NextQuestions []types.Question       `json:"next_questions"`
	Completion    types.CompletionStatus `json:"completion"`
}

// StatusResult is the response payload for a session status lookup
type StatusResult struct {
	SessionID         string                 `json:"session_id"`
	JobType           types.JobType          `json:"job_type"`
	Stage             string                 `json:"stage"`
	Status            string                 `json:"status"`
	AnsweredFields    types.AnsweredFields   `json:"answered_fields"`
	NextQuestions     []types.Question       `json:"next_questions"`
	Completion        types.CompletionStatus `json:"completion"`
	PhotoObservations []string               `json:"photo_observations,omitempty"`
}

// CalculateResult is the response payload for the calculate stage
type CalculateResult struct {
	SessionID  string                 `json:"session_id"`
	Stage      string                 `json:"stage"`
	BOM        types.BillOfMaterials  `json:"bill_of_materials"`
	BuildSteps []types.BuildStep      `json:"build_steps,omitempty"`
}

// EstimateResult is the response payload for the estimate stage
type EstimateResult struct {
	SessionID       string                 `json:"session_id"`
	Stage           string                 `json:"stage"`
	Labor           types.LaborEstimate    `json:"labor_estimate"`
	Finishing       types.FinishingSection `json:"finishing"`
	TotalLaborHours float64                `json:"total_labor_hours"`
	TotalLaborCost  float64                `json:"total_labor_cost"`
}

// PriceResult is the response payload for the price stage
type PriceResult struct {
	SessionID   string            `json:"session_id"`
	QuoteID     uint              `json:"quote_id"`
	QuoteNumber string            `json:"quote_number"`
	Quote       types.PricedQuote `json:"priced_quote"`
}

// PhotoResult is the response payload for photo analysis
type PhotoResult struct {
	SessionID     string                 `json:"session_id"`
	Extraction    types.PhotoExtraction  `json:"extraction"`
	MergedFields  []string               `json:"merged_fields"`
	NextQuestions []types.Question       `json:"next_questions"`
	Completion    types.CompletionStatus `json:"completion"`
}

// StartSession detects the job type, extracts answers from the description
// and creates the session record.
func (s *SessionService) StartSession(ctx context.Context, description, jobTypeOverride string) (*StartSessionResult, error) {
	result := &StartSessionResult{}

	if jobTypeOverride != "" {
		jt, err := types.ParseJobType(jobTypeOverride)
		if err != nil {
			return nil, fmt.Errorf("invalid job type override: %w", err)
		}
		result.JobType = jt
		result.DetectionConfidence = 1.0
	} else {
		detection := s.engine.DetectJobType(ctx, description)
		result.JobType = detection.JobType
		result.DetectionConfidence = detection.Confidence
		result.Ambiguous = detection.Ambiguous
	}

	result.TreeLoaded = s.hasTree(result.JobType)
	extracted := types.AnsweredFields{}
	if result.TreeLoaded {
		extracted = s.engine.ExtractFromText(ctx, result.JobType, description)
		next, err := s.engine.NextQuestions(result.JobType, extracted)
		if err != nil {
			return nil, fmt.Errorf("failed to get next questions: %w", err)
		}
		completion, err := s.engine.CompletionStatus(result.JobType, extracted)
		if err != nil {
			return nil, fmt.Errorf("failed to get completion status: %w", err)
		}
		result.NextQuestions = next
		result.Completion = completion
	}
	result.ExtractedFields = extracted

	stage := models.SessionStageIntake
	if result.TreeLoaded {
		stage = models.SessionStageClarify
		if result.Completion.IsComplete {
			stage = models.SessionStageCalculate
		}
	}

	answers, err := json.Marshal(extracted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extracted fields: %w", err)
	}

	session := &models.QuoteSession{
		SessionID:           uuid.New().String(),
		JobType:             string(result.JobType),
		Stage:               stage,
		Status:              models.SessionStatusActive,
		Description:         description,
		DetectionConfidence: result.DetectionConfidence,
		Ambiguous:           result.Ambiguous,
		Answers:             answers,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	result.SessionID = session.SessionID
	logger.Infof("Started session %s as %s (confidence %.2f)", session.SessionID, result.JobType, result.DetectionConfidence)
	return result, nil
}

// SubmitAnswers merges new answers into the session and recomputes the
// reachable questions and completion. Sessions past the clarify/calculate
// stages no longer accept answers.
func (s *SessionService) SubmitAnswers(ctx context.Context, sessionID string, answers map[string]string) (*AnswerResult, error) {
	session, jobType, err := s.activeClarifySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fields, err := sessionAnswers(session)
	if err != nil {
		return nil, err
	}
	for k, v := range answers {
		fields[k] = v
	}

	return s.saveAnswers(ctx, session, jobType, fields)
}

// RetractAnswer removes one answered field, re-activating its question and
// deactivating any branch children it alone unlocked.
func (s *SessionService) RetractAnswer(ctx context.Context, sessionID, field string) (*AnswerResult, error) {
	session, jobType, err := s.activeClarifySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fields, err := sessionAnswers(session)
	if err != nil {
		return nil, err
	}
	if _, ok := fields[field]; !ok {
		return nil, fmt.Errorf("field %q is not answered", field)
	}
	delete(fields, field)

	return s.saveAnswers(ctx, session, jobType, fields)
}

// AttachPhoto runs vision extraction on a job photo and merges the result
// non-authoritatively: fields already answered from text win on conflict.
func (s *SessionService) AttachPhoto(ctx context.Context, sessionID string, image []byte, mimeType, note string) (*PhotoResult, error) {
	session, jobType, err := s.activeClarifySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	extraction := s.engine.ExtractFromPhoto(ctx, jobType, image, mimeType, note)

	fields, err := sessionAnswers(session)
	if err != nil {
		return nil, err
	}
	var merged []string
	for k, v := range extraction.Fields {
		if _, taken := fields[k]; !taken && v != "" {
			fields[k] = v
			merged = append(merged, k)
		}
	}
	session.PhotoObservations = append(session.PhotoObservations, extraction.Observations...)
	session.PhotoObservations = append(session.PhotoObservations, extraction.DamageNotes...)

	answerResult, err := s.saveAnswers(ctx, session, jobType, fields)
	if err != nil {
		return nil, err
	}
	return &PhotoResult{
		SessionID:     sessionID,
		Extraction:    extraction,
		MergedFields:  merged,
		NextQuestions: answerResult.NextQuestions,
		Completion:    answerResult.Completion,
	}, nil
}

// Status returns the current session state without mutating anything.
func (s *SessionService) Status(ctx context.Context, sessionID string) (*StatusResult, error) {
	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	jobType := types.JobType(session.JobType)

	fields, err := sessionAnswers(session)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		SessionID:         session.SessionID,
		JobType:           jobType,
		Stage:             session.Stage.String(),
		Status:            session.Status.String(),
		AnsweredFields:    fields,
		PhotoObservations: session.PhotoObservations,
	}
	if s.hasTree(jobType) {
		if result.NextQuestions, err = s.engine.NextQuestions(jobType, fields); err != nil {
			return nil, err
		}
		if result.Completion, err = s.engine.CompletionStatus(jobType, fields); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Calculate runs the calculation engine on a completed session and stores
// the bill of materials. The session advances to the estimate stage.
func (s *SessionService) Calculate(ctx context.Context, sessionID string) (*CalculateResult, error) {
	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.SessionStageCalculate {
		return nil, &WrongStageError{Stage: session.Stage, Want: models.SessionStageCalculate, Hint: "answer the remaining required questions first"}
	}

	params, err := s.quoteParams(session)
	if err != nil {
		return nil, err
	}

	bom, err := s.registry.Calculate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("calculation failed: %w", err)
	}

	// Build instructions are an optional extra; failures only log.
	var steps []types.BuildStep
	if s.cuts != nil {
		steps, err = s.cuts.BuildInstructions(ctx, params, bom.Items)
		if err != nil {
			logger.Warnf("Build instructions unavailable for session %s: %v", sessionID, err)
			steps = nil
		}
	}

	if session.BOM, err = json.Marshal(bom); err != nil {
		return nil, fmt.Errorf("failed to marshal bill of materials: %w", err)
	}
	if steps != nil {
		if session.BuildSteps, err = json.Marshal(steps); err != nil {
			return nil, fmt.Errorf("failed to marshal build steps: %w", err)
		}
	}
	session.Stage = models.SessionStageEstimate
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &CalculateResult{
		SessionID:  sessionID,
		Stage:      session.Stage.String(),
		BOM:        bom,
		BuildSteps: steps,
	}, nil
}

// Estimate runs the labor estimator, historical validation and the finishing
// builder on a calculated session. The session advances to the price stage.
func (s *SessionService) Estimate(ctx context.Context, sessionID string) (*EstimateResult, error) {
	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.SessionStageEstimate {
		return nil, &WrongStageError{Stage: session.Stage, Want: models.SessionStageEstimate, Hint: "run calculate first"}
	}

	var bom types.BillOfMaterials
	if err := json.Unmarshal(session.BOM, &bom); err != nil {
		return nil, fmt.Errorf("session has no usable bill of materials: %w", err)
	}

	params, err := s.quoteParams(session)
	if err != nil {
		return nil, err
	}

	estimate := s.estimator.Estimate(ctx, bom, params)
	s.validator.Validate(ctx, &estimate, params.JobType)

	finish := finishing.Build(params.Fields["finish"], bom.TotalSqFt, estimate)

	if session.Labor, err = json.Marshal(estimate); err != nil {
		return nil, fmt.Errorf("failed to marshal labor estimate: %w", err)
	}
	if session.Finishing, err = json.Marshal(finish); err != nil {
		return nil, fmt.Errorf("failed to marshal finishing section: %w", err)
	}
	session.Stage = models.SessionStagePrice
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &EstimateResult{
		SessionID:       sessionID,
		Stage:           session.Stage.String(),
		Labor:           estimate,
		Finishing:       finish,
		TotalLaborHours: estimate.TotalHours,
		TotalLaborCost:  estimate.Cost(),
	}, nil
}

// PriceSession runs the pricing engine on an estimated session, creates the
// frozen quote record and closes the session.
func (s *SessionService) PriceSession(ctx context.Context, sessionID string, markupPct int) (*PriceResult, error) {
	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != models.SessionStagePrice {
		return nil, &WrongStageError{Stage: session.Stage, Want: models.SessionStagePrice, Hint: "run estimate first"}
	}

	var bom types.BillOfMaterials
	if err := json.Unmarshal(session.BOM, &bom); err != nil {
		return nil, fmt.Errorf("session has no usable bill of materials: %w", err)
	}
	var estimate types.LaborEstimate
	if err := json.Unmarshal(session.Labor, &estimate); err != nil {
		return nil, fmt.Errorf("session has no usable labor estimate: %w", err)
	}
	var finish types.FinishingSection
	if err := json.Unmarshal(session.Finishing, &finish); err != nil {
		return nil, fmt.Errorf("session has no usable finishing section: %w", err)
	}

	params, err := s.quoteParams(session)
	if err != nil {
		return nil, err
	}

	priced := s.pricer.Price(bom, estimate, finish, params, markupPct)

	pricedJSON, err := json.Marshal(priced)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal priced quote: %w", err)
	}
	quote := &models.Quote{
		SessionID:          sessionID,
		JobType:            session.JobType,
		Status:             models.QuoteStatusDraft,
		ProjectDescription: session.Description,
		SelectedMarkup:     priced.SelectedMarkup,
		Subtotal:           priced.Subtotal,
		GrandTotal:         priced.GrandTotal,
		Priced:             pricedJSON,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	session.Stage = models.SessionStageOutput
	session.Status = models.SessionStatusComplete
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Infof("Priced session %s as quote %s ($%.2f)", sessionID, quote.QuoteNumber, priced.GrandTotal)
	return &PriceResult{
		SessionID:   sessionID,
		QuoteID:     quote.ID,
		QuoteNumber: quote.QuoteNumber,
		Quote:       priced,
	}, nil
}

// --- helpers ---

func (s *SessionService) hasTree(jobType types.JobType) bool {
	for _, jt := range s.engine.AvailableTrees() {
		if jt == jobType {
			return true
		}
	}
	return false
}

// activeClarifySession loads a session and verifies it still accepts answers.
func (s *SessionService) activeClarifySession(ctx context.Context, sessionID string) (*models.QuoteSession, types.JobType, error) {
	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if session.Status != models.SessionStatusActive {
		return nil, "", fmt.Errorf("session is %s, not active", session.Status)
	}
	if session.Stage != models.SessionStageClarify && session.Stage != models.SessionStageCalculate {
		return nil, "", &WrongStageError{Stage: session.Stage, Want: models.SessionStageClarify, Hint: "answers are frozen once calculation has run"}
	}
	jobType := types.JobType(session.JobType)
	if !s.hasTree(jobType) {
		return nil, "", fmt.Errorf("no question tree for job type %q", session.JobType)
	}
	return session, jobType, nil
}

// saveAnswers persists the merged answers, recomputes the stage and returns
// the next questions.
func (s *SessionService) saveAnswers(ctx context.Context, session *models.QuoteSession, jobType types.JobType, fields types.AnsweredFields) (*AnswerResult, error) {
	completion, err := s.engine.CompletionStatus(jobType, fields)
	if err != nil {
		return nil, err
	}
	next, err := s.engine.NextQuestions(jobType, fields)
	if err != nil {
		return nil, err
	}

	if session.Answers, err = json.Marshal(fields); err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	if completion.IsComplete {
		session.Stage = models.SessionStageCalculate
	} else {
		session.Stage = models.SessionStageClarify
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &AnswerResult{
		SessionID:     session.SessionID,
		Stage:         session.Stage.String(),
		NextQuestions: next,
		Completion:    completion,
	}, nil
}

func (s *SessionService) quoteParams(session *models.QuoteSession) (types.QuoteParams, error) {
	fields, err := sessionAnswers(session)
	if err != nil {
		return types.QuoteParams{}, err
	}
	return s.engine.QuoteParams(
		types.JobType(session.JobType),
		fields,
		session.Description,
		session.Notes,
		session.PhotoObservations,
	)
}

func sessionAnswers(session *models.QuoteSession) (types.AnsweredFields, error) {
	fields := types.AnsweredFields{}
	if len(session.Answers) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(session.Answers, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session answers: %w", err)
	}
	return fields, nil
}
