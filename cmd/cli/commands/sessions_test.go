package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/api/v1/client/mock"
	"github.com/fabforge/fabquote/internal/api/v1/handlers"
	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/types"
)

// setupSessionsTestCommand sets up a test command with a mock client
func setupSessionsTestCommand(t *testing.T) (*cobra.Command, *mock.MockClient, *bytes.Buffer) {
	mockClient := &mock.MockClient{}

	originalClient := apiClient
	t.Cleanup(func() {
		apiClient = originalClient
	})
	apiClient = mockClient

	outputBuf := &bytes.Buffer{}
	cmd := GetSessionsCmd()
	cmd.SetOut(outputBuf)
	for _, subCmd := range cmd.Commands() {
		subCmd.SetOut(outputBuf)
	}

	return cmd, mockClient, outputBuf
}

func TestStartSessionCommand(t *testing.T) {
	cmd, mockClient, outputBuf := setupSessionsTestCommand(t)

	mockClient.StartSessionFn = func(_ context.Context, req handlers.StartSessionRequest) (*services.StartSessionResult, error) {
		assert.Equal(t, "20ft cantilever gate", req.Description)
		assert.Equal(t, "cantilever_gate", req.JobType)

		return &services.StartSessionResult{
			SessionID:           "abc-123",
			JobType:             types.JobTypeCantileverGate,
			DetectionConfidence: 1.0,
			TreeLoaded:          true,
		}, nil
	}

	cmd.SetArgs([]string{"start", "-d", "20ft cantilever gate", "-j", "cantilever_gate"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Len(t, mockClient.StartSessionCalls, 1, "StartSession should be called once")

	output := outputBuf.String()
	assert.Contains(t, output, `"session_id": "abc-123"`)
	assert.Contains(t, output, `"job_type": "cantilever_gate"`)
}

func TestAnswerCommandParsesPairs(t *testing.T) {
	cmd, mockClient, outputBuf := setupSessionsTestCommand(t)

	mockClient.SubmitAnswersFn = func(_ context.Context, sessionID string, answers map[string]string) (*services.AnswerResult, error) {
		assert.Equal(t, "abc-123", sessionID)
		assert.Equal(t, "40", answers["linear_feet"])
		assert.Equal(t, "Powder coat", answers["finish"])

		return &services.AnswerResult{
			SessionID: sessionID,
			Stage:     "calculate",
			Completion: types.CompletionStatus{
				IsComplete: true,
			},
		}, nil
	}

	cmd.SetArgs([]string{"answer", "-i", "abc-123", "-a", "linear_feet=40", "-a", "finish=Powder coat"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Len(t, mockClient.SubmitAnswersCalls, 1)
	assert.Contains(t, outputBuf.String(), `"stage": "calculate"`)
}

func TestAnswerCommandRejectsMalformedPair(t *testing.T) {
	cmd, mockClient, _ := setupSessionsTestCommand(t)

	cmd.SetArgs([]string{"answer", "-i", "abc-123", "-a", "no-equals-sign"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected field=value")
	assert.Empty(t, mockClient.SubmitAnswersCalls)
}

func TestPriceCommand(t *testing.T) {
	cmd, mockClient, outputBuf := setupSessionsTestCommand(t)

	mockClient.PriceFn = func(_ context.Context, sessionID string, markupPct int) (*services.PriceResult, error) {
		assert.Equal(t, "abc-123", sessionID)
		assert.Equal(t, 20, markupPct)

		return &services.PriceResult{
			SessionID:   sessionID,
			QuoteID:     7,
			QuoteNumber: "FQ-2026-0007",
		}, nil
	}

	cmd.SetArgs([]string{"price", "-i", "abc-123", "-m", "20"})
	err := cmd.Execute()
	require.NoError(t, err, "Command execution failed")

	require.Len(t, mockClient.PriceCalls, 1)
	assert.Contains(t, outputBuf.String(), `"quote_number": "FQ-2026-0007"`)
}
