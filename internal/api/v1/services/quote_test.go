package services

import (
	"github.com/fabforge/fabquote/internal/db/models"
)

func (s *ServiceTestSuite) TestGetQuote() {
	priced := s.pricedRailingQuote()

	got, err := s.quotes.Get(s.ctx, priced.QuoteID)
	s.Require().NoError(err)
	s.Equal(priced.QuoteNumber, got.QuoteNumber)
	s.Equal(priced.SessionID, got.SessionID)
	s.Equal("draft", got.Status)
	s.Equal(priced.Quote.GrandTotal, got.Quote.GrandTotal)

	byNumber, err := s.quotes.GetByNumber(s.ctx, priced.QuoteNumber)
	s.Require().NoError(err)
	s.Equal(got.QuoteID, byNumber.QuoteID)
}

func (s *ServiceTestSuite) TestGetQuoteNotFound() {
	_, err := s.quotes.Get(s.ctx, 424242)
	s.Require().Error(err)
	s.Contains(err.Error(), "quote not found")
}

func (s *ServiceTestSuite) TestListQuotes() {
	s.pricedRailingQuote()

	results, err := s.quotes.List(s.ctx, &models.ListOptions{Limit: models.DefaultLimit})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Contains(results[0].QuoteNumber, "FQ-")
}

func (s *ServiceTestSuite) TestRecalculateMarkupKeepsSubtotalsFrozen() {
	priced := s.pricedRailingQuote()

	recalced, err := s.quotes.RecalculateMarkup(s.ctx, priced.QuoteID, 25)
	s.Require().NoError(err)
	s.Equal(25, recalced.Quote.SelectedMarkup)
	s.Equal(priced.Quote.Subtotal, recalced.Quote.Subtotal)
	s.Equal(priced.Quote.MarkupTotals[25], recalced.Quote.GrandTotal)

	stored, err := s.quotes.Get(s.ctx, priced.QuoteID)
	s.Require().NoError(err)
	s.Equal(25, stored.Quote.SelectedMarkup)
	s.Equal(priced.Quote.Subtotal, stored.Quote.Subtotal)
}

func (s *ServiceTestSuite) TestRecalculateMarkupRejectsInvalidOption() {
	priced := s.pricedRailingQuote()

	_, err := s.quotes.RecalculateMarkup(s.ctx, priced.QuoteID, 17)
	s.Require().Error(err)

	stored, err := s.quotes.Get(s.ctx, priced.QuoteID)
	s.Require().NoError(err)
	s.Equal(15, stored.Quote.SelectedMarkup)
}

func (s *ServiceTestSuite) TestUpdateQuoteStatus() {
	priced := s.pricedRailingQuote()

	s.Require().NoError(s.quotes.UpdateStatus(s.ctx, priced.QuoteID, models.QuoteStatusSent))

	got, err := s.quotes.Get(s.ctx, priced.QuoteID)
	s.Require().NoError(err)
	s.Equal("sent", got.Status)
}

func (s *ServiceTestSuite) TestRenderPDF() {
	priced := s.pricedRailingQuote()

	out, filename, err := s.quotes.RenderPDF(s.ctx, priced.QuoteID)
	s.Require().NoError(err)
	s.Equal("%PDF", string(out[:4]))
	s.Contains(filename, priced.QuoteNumber)
}

func (s *ServiceTestSuite) TestRecordActualUsesQuoteEstimate() {
	priced := s.pricedRailingQuote()

	record, err := s.quotes.RecordActual(s.ctx, priced.QuoteID, 30, map[string]float64{"full_weld": 12}, "ran long on fit-up")
	s.Require().NoError(err)
	s.Equal(priced.Quote.Labor.TotalHours, record.EstimatedHours)
	s.Equal(30.0, record.ActualHours)
	s.Equal(priced.QuoteID, record.QuoteID)
	s.InDelta((30.0-record.EstimatedHours)/record.EstimatedHours, record.VariancePct, 0.0001)
}

func (s *ServiceTestSuite) TestRecordActualRejectsNonPositiveHours() {
	priced := s.pricedRailingQuote()

	_, err := s.quotes.RecordActual(s.ctx, priced.QuoteID, 0, nil, "")
	s.Require().Error(err)
}
