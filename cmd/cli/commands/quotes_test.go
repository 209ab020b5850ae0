package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/api/v1/client/mock"
	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/db/models"
	"github.com/fabforge/fabquote/internal/types"
)

// setupQuotesTestCommand sets up a test command with a mock client
func setupQuotesTestCommand(t *testing.T) (*cobra.Command, *mock.MockClient, *bytes.Buffer) {
	mockClient := &mock.MockClient{}

	originalClient := apiClient
	t.Cleanup(func() {
		apiClient = originalClient
	})
	apiClient = mockClient

	outputBuf := &bytes.Buffer{}
	cmd := GetQuotesCmd()
	cmd.SetOut(outputBuf)
	for _, subCmd := range cmd.Commands() {
		subCmd.SetOut(outputBuf)
	}

	return cmd, mockClient, outputBuf
}

func TestListQuotesCommand(t *testing.T) {
	cmd, mockClient, outputBuf := setupQuotesTestCommand(t)

	mockClient.ListQuotesFn = func(_ context.Context, opts *models.ListOptions) ([]services.QuoteResult, error) {
		assert.Equal(t, 5, opts.Limit)

		return []services.QuoteResult{
			{QuoteID: 1, QuoteNumber: "FQ-2026-0001", Status: "draft", Quote: types.PricedQuote{GrandTotal: 2357.50}},
			{QuoteID: 2, QuoteNumber: "FQ-2026-0002", Status: "sent", Quote: types.PricedQuote{GrandTotal: 5460.00}},
		}, nil
	}

	cmd.SetArgs([]string{"list", "-l", "5"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Len(t, mockClient.ListQuotesCalls, 1, "ListQuotes should be called once")

	output := outputBuf.String()
	assert.Contains(t, output, `"quote_number": "FQ-2026-0001"`)
	assert.Contains(t, output, `"status": "sent"`)
	assert.Contains(t, output, `"grand_total": 5460`)
}

func TestMarkupCommand(t *testing.T) {
	cmd, mockClient, outputBuf := setupQuotesTestCommand(t)

	mockClient.RecalculateMarkupFn = func(_ context.Context, quoteID uint, markupPct int) (*services.QuoteResult, error) {
		assert.Equal(t, uint(7), quoteID)
		assert.Equal(t, 25, markupPct)

		return &services.QuoteResult{
			QuoteID:     7,
			QuoteNumber: "FQ-2026-0007",
			Status:      "draft",
			Quote:       types.PricedQuote{SelectedMarkup: 25, GrandTotal: 3017.38},
		}, nil
	}

	cmd.SetArgs([]string{"markup", "-i", "7", "-m", "25"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Len(t, mockClient.RecalculateMarkupCalls, 1)
	assert.Contains(t, outputBuf.String(), `"selected_markup": 25`)
}

func TestQuoteCommandRejectsBadID(t *testing.T) {
	cmd, mockClient, _ := setupQuotesTestCommand(t)

	cmd.SetArgs([]string{"get", "-i", "not-a-number"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quote id")
	assert.Empty(t, mockClient.GetQuoteCalls)
}
