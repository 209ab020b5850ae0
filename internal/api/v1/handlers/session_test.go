package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/calc"
	"github.com/fabforge/fabquote/internal/catalog"
	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/db/repos"
	"github.com/fabforge/fabquote/internal/labor"
	"github.com/fabforge/fabquote/internal/pdf"
	"github.com/fabforge/fabquote/internal/pricing"
	"github.com/fabforge/fabquote/internal/questions"
)

type HandlerTestSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
}

func (s *HandlerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_json=1"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err, "failed to connect database")

	err = db.AutoMigrate(&models.QuoteSession{}, &models.Quote{}, &models.HistoricalActual{})
	s.Require().NoError(err, "failed to migrate database schema")

	sessionRepo := repos.NewSessionRepository(db)
	quoteRepo := repos.NewQuoteRepository(db)
	actualRepo := repos.NewHistoricalActualRepository(db)

	registry, err := questions.NewRegistry()
	s.Require().NoError(err)
	stub := &ai.Stub{}
	engine := questions.NewEngine(registry, stub)

	hardware := catalog.NewHardwareSourcer()
	sessionService := services.NewSessionService(
		sessionRepo,
		quoteRepo,
		engine,
		calc.NewRegistry(catalog.NewPriceBook(), hardware, nil),
		nil,
		labor.NewEstimator(stub, labor.DefaultRates()),
		labor.NewHistoricalValidator(actualRepo),
		pricing.NewEngine(hardware),
	)
	quoteService := services.NewQuoteService(quoteRepo, actualRepo, pdf.NewRenderer("Test Shop"))

	sessions := NewSessionHandler(sessionService)
	quotes := NewQuoteHandler(quoteService)

	app := fiber.New()
	g := app.Group("/api/v1")
	sg := g.Group("/sessions")
	sg.Post("/", sessions.StartSession)
	sg.Get("/:id", sessions.GetStatus)
	sg.Post("/:id/answers", sessions.SubmitAnswers)
	sg.Delete("/:id/answers/:field", sessions.RetractAnswer)
	sg.Post("/:id/calculate", sessions.Calculate)
	sg.Post("/:id/estimate", sessions.Estimate)
	sg.Post("/:id/price", sessions.Price)
	qg := g.Group("/quotes")
	qg.Get("/:id", quotes.Get)
	qg.Get("/:id/pdf", quotes.PDF)
	qg.Post("/:id/markup", quotes.RecalculateMarkup)
	qg.Post("/:id/actuals", quotes.RecordActuals)

	s.db = db
	s.app = app
}

func (s *HandlerTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// request issues a JSON request against the test app and decodes the
// standard response envelope.
func (s *HandlerTestSuite) request(method, path, body string) (*http.Response, Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	var envelope Response
	if resp.Header.Get("Content-Type") != "application/pdf" {
		raw, err := io.ReadAll(resp.Body)
		s.Require().NoError(err)
		s.Require().NoError(json.Unmarshal(raw, &envelope))
	}
	return resp, envelope
}

// startSession creates a session over HTTP and returns its id.
func (s *HandlerTestSuite) startSession() string {
	resp, envelope := s.request("POST", "/api/v1/sessions/",
		`{"description": "40 feet of deck railing", "job_type": "straight_railing"}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	s.Require().Equal(SuccessSlug, envelope.Slug)

	data := envelope.Data.(map[string]interface{})
	return data["session_id"].(string)
}

// completeSession answers every required railing field over HTTP.
func (s *HandlerTestSuite) completeSession(sessionID string) {
	body := `{"answers": {"linear_feet": "40", "height": "36", "mounting_surface": "Wood deck", "application": "Residential", "material": "Mild steel", "infill_type": "Vertical pickets", "finish": "Powder coat"}}`
	resp, envelope := s.request("POST", "/api/v1/sessions/"+sessionID+"/answers", body)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Require().Equal(SuccessSlug, envelope.Slug)
}

// priceSession drives a completed session to a stored quote and returns the
// quote id.
func (s *HandlerTestSuite) priceSession(sessionID string) float64 {
	resp, _ := s.request("POST", "/api/v1/sessions/"+sessionID+"/calculate", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	resp, _ = s.request("POST", "/api/v1/sessions/"+sessionID+"/estimate", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp, envelope := s.request("POST", "/api/v1/sessions/"+sessionID+"/price", `{"markup_pct": 15}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	data := envelope.Data.(map[string]interface{})
	return data["quote_id"].(float64)
}

func (s *HandlerTestSuite) TestStartSessionValidation() {
	resp, envelope := s.request("POST", "/api/v1/sessions/", `{"description": ""}`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(InvalidInputSlug, envelope.Slug)
	s.Contains(envelope.Error, "description is required")
}

func (s *HandlerTestSuite) TestSessionStatusNotFound() {
	resp, envelope := s.request("GET", "/api/v1/sessions/no-such-session", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal(NotFoundSlug, envelope.Slug)
}

func (s *HandlerTestSuite) TestCalculateBeforeCompleteReturnsConflict() {
	sessionID := s.startSession()

	resp, envelope := s.request("POST", "/api/v1/sessions/"+sessionID+"/calculate", "")
	s.Equal(fiber.StatusConflict, resp.StatusCode)
	s.Equal(WrongStageSlug, envelope.Slug)
}

func (s *HandlerTestSuite) TestFullPipelineOverHTTP() {
	sessionID := s.startSession()
	s.completeSession(sessionID)
	quoteID := s.priceSession(sessionID)

	resp, envelope := s.request("GET", fmt.Sprintf("/api/v1/quotes/%.0f", quoteID), "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(SuccessSlug, envelope.Slug)

	data := envelope.Data.(map[string]interface{})
	s.Contains(data["quote_number"].(string), "FQ-")
}

func (s *HandlerTestSuite) TestRetractAnswerOverHTTP() {
	sessionID := s.startSession()
	s.completeSession(sessionID)

	resp, envelope := s.request("DELETE", "/api/v1/sessions/"+sessionID+"/answers/finish", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(SuccessSlug, envelope.Slug)

	data := envelope.Data.(map[string]interface{})
	s.Equal("clarify", data["stage"].(string))
}

func (s *HandlerTestSuite) TestMarkupChangeOverHTTP() {
	sessionID := s.startSession()
	s.completeSession(sessionID)
	quoteID := s.priceSession(sessionID)

	resp, envelope := s.request("POST", fmt.Sprintf("/api/v1/quotes/%.0f/markup", quoteID), `{"markup_pct": 25}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(SuccessSlug, envelope.Slug)

	resp, envelope = s.request("POST", fmt.Sprintf("/api/v1/quotes/%.0f/markup", quoteID), `{"markup_pct": 17}`)
	s.Equal(fiber.StatusInternalServerError, resp.StatusCode)
	s.Equal(ServerErrorSlug, envelope.Slug)
}

func (s *HandlerTestSuite) TestQuotePDFOverHTTP() {
	sessionID := s.startSession()
	s.completeSession(sessionID)
	quoteID := s.priceSession(sessionID)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/v1/quotes/%.0f/pdf", quoteID), nil)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal("%PDF", string(raw[:4]))
}

func (s *HandlerTestSuite) TestRecordActualsValidation() {
	sessionID := s.startSession()
	s.completeSession(sessionID)
	quoteID := s.priceSession(sessionID)

	resp, envelope := s.request("POST", fmt.Sprintf("/api/v1/quotes/%.0f/actuals", quoteID), `{"actual_hours": 0}`)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(InvalidInputSlug, envelope.Slug)

	resp, envelope = s.request("POST", fmt.Sprintf("/api/v1/quotes/%.0f/actuals", quoteID), `{"actual_hours": 28.5, "notes": "install ran long"}`)
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal(SuccessSlug, envelope.Slug)
}
