package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fabforge/fabquote/internal/api/v1/handlers"
	"github.com/fabforge/fabquote/internal/db/models"
)

// quoteOutput represents the filtered output for a quote listing
type quoteOutput struct {
	QuoteID     uint    `json:"quote_id"`
	QuoteNumber string  `json:"quote_number"`
	Status      string  `json:"status"`
	GrandTotal  float64 `json:"grand_total"`
}

func init() {
	quotesCmd.AddCommand(listQuotesCmd)
	quotesCmd.AddCommand(getQuoteCmd)
	quotesCmd.AddCommand(markupCmd)
	quotesCmd.AddCommand(quoteStatusCmd)
	quotesCmd.AddCommand(actualsCmd)
	quotesCmd.AddCommand(pdfCmd)

	listQuotesCmd.Flags().IntP("limit", "l", models.DefaultLimit, "Limit the number of quotes returned")
	listQuotesCmd.Flags().Int("offset", 0, "Pagination offset")

	getQuoteCmd.Flags().StringP("id", "i", "", "Quote ID to fetch")
	_ = getQuoteCmd.MarkFlagRequired("id")

	markupCmd.Flags().StringP("id", "i", "", "Quote ID")
	markupCmd.Flags().IntP("markup", "m", 15, "Markup percentage (0, 5, 10, 15, 20, 25, 30)")
	_ = markupCmd.MarkFlagRequired("id")
	_ = markupCmd.MarkFlagRequired("markup")

	quoteStatusCmd.Flags().StringP("id", "i", "", "Quote ID")
	quoteStatusCmd.Flags().String("status", "", "New status (draft, sent, accepted, declined)")
	_ = quoteStatusCmd.MarkFlagRequired("id")
	_ = quoteStatusCmd.MarkFlagRequired("status")

	actualsCmd.Flags().StringP("id", "i", "", "Quote ID")
	actualsCmd.Flags().Float64("hours", 0, "Actual total hours the job took")
	actualsCmd.Flags().String("notes", "", "Notes on where time went")
	_ = actualsCmd.MarkFlagRequired("id")
	_ = actualsCmd.MarkFlagRequired("hours")

	pdfCmd.Flags().StringP("id", "i", "", "Quote ID")
	pdfCmd.Flags().StringP("out", "o", "", "Output path (default: quote_<number>.pdf in the working directory)")
	_ = pdfCmd.MarkFlagRequired("id")
}

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Manage finished quotes",
}

// parseQuoteID reads the quote id flag
func parseQuoteID(cmd *cobra.Command) (uint, error) {
	raw, _ := cmd.Flags().GetString("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid quote id %q: %w", raw, err)
	}
	return uint(id), nil
}

var listQuotesCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		quotes, err := apiClient.ListQuotes(context.Background(), &models.ListOptions{Limit: limit, Offset: offset})
		if err != nil {
			return fmt.Errorf("error fetching quotes: %w", err)
		}

		output := make([]quoteOutput, len(quotes))
		for i, q := range quotes {
			output[i] = quoteOutput{
				QuoteID:     q.QuoteID,
				QuoteNumber: q.QuoteNumber,
				Status:      q.Status,
				GrandTotal:  q.Quote.GrandTotal,
			}
		}
		return printJSON(cmd, output)
	},
}

var getQuoteCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific quote",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := parseQuoteID(cmd)
		if err != nil {
			return err
		}

		quote, err := apiClient.GetQuote(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching quote: %w", err)
		}
		return printJSON(cmd, quote)
	},
}

var markupCmd = &cobra.Command{
	Use:   "markup",
	Short: "Change the selected markup on a quote",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := parseQuoteID(cmd)
		if err != nil {
			return err
		}
		markup, _ := cmd.Flags().GetInt("markup")

		quote, err := apiClient.RecalculateMarkup(context.Background(), id, markup)
		if err != nil {
			return fmt.Errorf("error changing markup: %w", err)
		}
		return printJSON(cmd, quote)
	},
}

var quoteStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Move a quote through its lifecycle",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := parseQuoteID(cmd)
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")

		if err := apiClient.UpdateQuoteStatus(context.Background(), id, status); err != nil {
			return fmt.Errorf("error updating status: %w", err)
		}
		cmd.Printf("Quote %d is now %s\n", id, status)
		return nil
	},
}

var actualsCmd = &cobra.Command{
	Use:   "actuals",
	Short: "Record the real hours a completed job took",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := parseQuoteID(cmd)
		if err != nil {
			return err
		}
		hours, _ := cmd.Flags().GetFloat64("hours")
		notes, _ := cmd.Flags().GetString("notes")

		record, err := apiClient.RecordActuals(context.Background(), id, handlers.ActualsRequest{
			ActualHours: hours,
			Notes:       notes,
		})
		if err != nil {
			return fmt.Errorf("error recording actuals: %w", err)
		}
		return printJSON(cmd, record)
	},
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Download the rendered quote document",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := parseQuoteID(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("quote_%d.pdf", id)
		}

		pdfBytes, err := apiClient.QuotePDF(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching PDF: %w", err)
		}
		if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("error writing PDF: %w", err)
		}
		cmd.Printf("Wrote %s (%d bytes)\n", out, len(pdfBytes))
		return nil
	},
}

// GetQuotesCmd returns the quotes command
func GetQuotesCmd() *cobra.Command {
	return quotesCmd
}
