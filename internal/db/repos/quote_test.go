package repos

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fabforge/fabquote/internal/db/models"
)

func (s *DBRepositoryTestSuite) TestCreateQuoteGeneratesNumber() {
	quote := s.createTestQuote()
	s.Equal(fmt.Sprintf("FQ-%d-0001", time.Now().UTC().Year()), quote.QuoteNumber)

	second := s.createTestQuote()
	s.Equal(fmt.Sprintf("FQ-%d-0002", time.Now().UTC().Year()), second.QuoteNumber)
}

func (s *DBRepositoryTestSuite) TestCreateQuoteKeepsExplicitNumber() {
	quote := &models.Quote{
		QuoteNumber: "FQ-2026-9999",
		SessionID:   "manual-session",
		JobType:     "bollard",
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.quoteRepo.Create(s.ctx, quote))
	s.Equal("FQ-2026-9999", quote.QuoteNumber)
}

func (s *DBRepositoryTestSuite) TestGetQuoteByIDAndNumber() {
	created := s.createTestQuote()

	byID, err := s.quoteRepo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.QuoteNumber, byID.QuoteNumber)
	s.Equal(4200.00, byID.Subtotal)

	byNumber, err := s.quoteRepo.GetByQuoteNumber(s.ctx, created.QuoteNumber)
	s.Require().NoError(err)
	s.Equal(created.ID, byNumber.ID)
}

func (s *DBRepositoryTestSuite) TestGetQuoteNotFound() {
	_, err := s.quoteRepo.GetByID(s.ctx, 424242)
	s.Require().Error(err)
	s.Contains(err.Error(), "quote not found")
}

func (s *DBRepositoryTestSuite) TestUpdateMarkupTouchesOnlyMarkupFields() {
	quote := s.createTestQuote()

	priced, err := json.Marshal(map[string]interface{}{"subtotal": 4200.00, "grand_total": 5460.00})
	s.Require().NoError(err)
	s.Require().NoError(s.quoteRepo.UpdateMarkup(s.ctx, quote.ID, 30, 5460.00, priced))

	got, err := s.quoteRepo.GetByID(s.ctx, quote.ID)
	s.Require().NoError(err)
	s.Equal(30, got.SelectedMarkup)
	s.Equal(5460.00, got.GrandTotal)
	s.Equal(4200.00, got.Subtotal) // Frozen
	s.Equal(quote.QuoteNumber, got.QuoteNumber)
}

func (s *DBRepositoryTestSuite) TestUpdateQuoteStatus() {
	quote := s.createTestQuote()

	s.Require().NoError(s.quoteRepo.UpdateStatus(s.ctx, quote.ID, models.QuoteStatusSent))

	got, err := s.quoteRepo.GetByID(s.ctx, quote.ID)
	s.Require().NoError(err)
	s.Equal(models.QuoteStatusSent, got.Status)
}

func (s *DBRepositoryTestSuite) TestListQuotes() {
	s.createTestQuote()
	s.createTestQuote()

	quotes, err := s.quoteRepo.List(s.ctx, &models.ListOptions{Limit: models.DefaultLimit})
	s.Require().NoError(err)
	s.Len(quotes, 2)
}

func (s *DBRepositoryTestSuite) TestQuoteStatusRoundTrip() {
	for _, name := range []string{"draft", "sent", "accepted", "declined"} {
		status, err := models.ParseQuoteStatus(name)
		s.Require().NoError(err)
		s.Equal(name, status.String())
	}
	_, err := models.ParseQuoteStatus("expired")
	s.Require().Error(err)
}
