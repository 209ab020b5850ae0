package ai

import "context"

// Stub is a scriptable Provider for tests. Responses are served in order;
// when they run out the last one repeats. Prompts records every prompt the
// stub received.
type Stub struct {
	Responses []string
	Err       error
	Prompts   []string
	calls     int
}

// Complete returns the next scripted response
func (s *Stub) Complete(_ context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Responses) == 0 {
		return "", ErrUnavailable
	}
	idx := s.calls
	if idx >= len(s.Responses) {
		idx = len(s.Responses) - 1
	}
	s.calls++
	return s.Responses[idx], nil
}

// CompleteVision behaves like Complete, ignoring the image
func (s *Stub) CompleteVision(ctx context.Context, prompt string, _ []byte, _ string) (string, error) {
	return s.Complete(ctx, prompt)
}
