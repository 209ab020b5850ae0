package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabforge/fabquote/internal/api/v1/handlers"
)

func init() {
	sessionsCmd.AddCommand(startSessionCmd)
	sessionsCmd.AddCommand(sessionStatusCmd)
	sessionsCmd.AddCommand(answerCmd)
	sessionsCmd.AddCommand(retractCmd)
	sessionsCmd.AddCommand(photoCmd)
	sessionsCmd.AddCommand(calculateCmd)
	sessionsCmd.AddCommand(estimateCmd)
	sessionsCmd.AddCommand(priceCmd)

	startSessionCmd.Flags().StringP("description", "d", "", "Free-text description of the job")
	startSessionCmd.Flags().StringP("job-type", "j", "", "Override the detected job type")
	_ = startSessionCmd.MarkFlagRequired("description")

	sessionStatusCmd.Flags().StringP("id", "i", "", "Session ID")
	_ = sessionStatusCmd.MarkFlagRequired("id")

	answerCmd.Flags().StringP("id", "i", "", "Session ID")
	answerCmd.Flags().StringArrayP("answer", "a", nil, "Answer as field=value (repeatable)")
	_ = answerCmd.MarkFlagRequired("id")
	_ = answerCmd.MarkFlagRequired("answer")

	retractCmd.Flags().StringP("id", "i", "", "Session ID")
	retractCmd.Flags().StringP("field", "f", "", "Answered field to remove")
	_ = retractCmd.MarkFlagRequired("id")
	_ = retractCmd.MarkFlagRequired("field")

	photoCmd.Flags().StringP("id", "i", "", "Session ID")
	photoCmd.Flags().StringP("file", "f", "", "Path to the photo file")
	photoCmd.Flags().String("note", "", "Additional context for the photo")
	_ = photoCmd.MarkFlagRequired("id")
	_ = photoCmd.MarkFlagRequired("file")

	calculateCmd.Flags().StringP("id", "i", "", "Session ID")
	_ = calculateCmd.MarkFlagRequired("id")

	estimateCmd.Flags().StringP("id", "i", "", "Session ID")
	_ = estimateCmd.MarkFlagRequired("id")

	priceCmd.Flags().StringP("id", "i", "", "Session ID")
	priceCmd.Flags().IntP("markup", "m", 15, "Markup percentage (0, 5, 10, 15, 20, 25, 30)")
	_ = priceCmd.MarkFlagRequired("id")
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage quote sessions",
}

var startSessionCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a quote session from a job description",
	RunE: func(cmd *cobra.Command, _ []string) error {
		description, _ := cmd.Flags().GetString("description")
		jobType, _ := cmd.Flags().GetString("job-type")

		result, err := apiClient.StartSession(context.Background(), handlers.StartSessionRequest{
			Description: description,
			JobType:     jobType,
		})
		if err != nil {
			return fmt.Errorf("error starting session: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session state and remaining questions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")

		result, err := apiClient.GetSession(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("error fetching session: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Answer clarifying questions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")
		pairs, _ := cmd.Flags().GetStringArray("answer")

		answers := make(map[string]string, len(pairs))
		for _, pair := range pairs {
			field, value, found := strings.Cut(pair, "=")
			if !found || field == "" {
				return fmt.Errorf("invalid answer %q, expected field=value", pair)
			}
			answers[field] = value
		}

		result, err := apiClient.SubmitAnswers(context.Background(), sessionID, answers)
		if err != nil {
			return fmt.Errorf("error submitting answers: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var retractCmd = &cobra.Command{
	Use:   "retract",
	Short: "Remove an answered field",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")
		field, _ := cmd.Flags().GetString("field")

		result, err := apiClient.RetractAnswer(context.Background(), sessionID, field)
		if err != nil {
			return fmt.Errorf("error retracting answer: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Attach a job photo for vision extraction",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")
		path, _ := cmd.Flags().GetString("file")
		note, _ := cmd.Flags().GetString("note")

		image, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading photo: %w", err)
		}

		result, err := apiClient.AttachPhoto(context.Background(), sessionID, handlers.AttachPhotoRequest{
			ImageBase64: base64.StdEncoding.EncodeToString(image),
			MimeType:    mimeTypeFor(path),
			Note:        note,
		})
		if err != nil {
			return fmt.Errorf("error attaching photo: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the calculation engine on a completed session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")

		result, err := apiClient.Calculate(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("error calculating: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run the labor estimator and finishing builder",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")

		result, err := apiClient.Estimate(context.Background(), sessionID)
		if err != nil {
			return fmt.Errorf("error estimating: %w", err)
		}
		return printJSON(cmd, result)
	},
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price the session and create the quote",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sessionID, _ := cmd.Flags().GetString("id")
		markup, _ := cmd.Flags().GetInt("markup")

		result, err := apiClient.Price(context.Background(), sessionID, markup)
		if err != nil {
			return fmt.Errorf("error pricing: %w", err)
		}
		return printJSON(cmd, result)
	},
}

// mimeTypeFor guesses the photo content type from the file extension.
func mimeTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// GetSessionsCmd returns the sessions command
func GetSessionsCmd() *cobra.Command {
	return sessionsCmd
}
