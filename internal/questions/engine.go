package questions

import (
	"fmt"

	"github.com/fabforge/fabquote/internal/ai"
	"github.com/fabforge/fabquote/internal/types"
)

// Engine walks question trees: it computes next questions, tracks
// completion, and extracts answers from free text and photos. All AI usage
// is best-effort; the engine degrades to "ask the user".
type Engine struct {
	registry *Registry
	provider ai.Provider
}

// NewEngine creates an engine over a tree registry and an AI provider.
func NewEngine(registry *Registry, provider ai.Provider) *Engine {
	return &Engine{registry: registry, provider: provider}
}

// AllQuestions returns every question for a job type in tree order
func (e *Engine) AllQuestions(jobType types.JobType) ([]types.Question, error) {
	tree, err := e.registry.Tree(jobType)
	if err != nil {
		return nil, err
	}
	return tree.Questions, nil
}

// RequiredFields returns the required field ids for a job type
func (e *Engine) RequiredFields(jobType types.JobType) ([]string, error) {
	tree, err := e.registry.Tree(jobType)
	if err != nil {
		return nil, err
	}
	return tree.RequiredFields, nil
}

// AvailableTrees returns the job types with a registered tree
func (e *Engine) AvailableTrees() []types.JobType {
	return e.registry.Available()
}

// NextQuestions returns the unanswered questions currently reachable given
// the answered fields.
//
// A question with depends_on is surfaced only once its parent is answered,
// and when the parent carries branches only if one of the parent's
// qualifying answers activates it. Already-answered questions are never
// returned. Order follows the tree; ids are unique by construction.
func (e *Engine) NextQuestions(jobType types.JobType, answered types.AnsweredFields) ([]types.Question, error) {
	tree, err := e.registry.Tree(jobType)
	if err != nil {
		return nil, err
	}

	activated := branchActivated(tree, answered)

	var next []types.Question
	for _, q := range tree.Questions {
		if _, ok := answered[q.ID]; ok {
			continue
		}
		if !reachable(tree, q, answered, activated) {
			continue
		}
		next = append(next, q)
	}
	return next, nil
}

// IsComplete reports whether every reachable required field is answered
func (e *Engine) IsComplete(jobType types.JobType, answered types.AnsweredFields) (bool, error) {
	status, err := e.CompletionStatus(jobType, answered)
	if err != nil {
		return false, err
	}
	return status.IsComplete, nil
}

// CompletionStatus returns detailed required-field coverage. Required
// fields whose questions sit behind untaken branches do not count toward
// the denominator.
func (e *Engine) CompletionStatus(jobType types.JobType, answered types.AnsweredFields) (types.CompletionStatus, error) {
	tree, err := e.registry.Tree(jobType)
	if err != nil {
		return types.CompletionStatus{}, err
	}

	activated := branchActivated(tree, answered)

	var required, answeredRequired, missing []string
	for _, rf := range tree.RequiredFields {
		q := findQuestion(tree, rf)
		if q == nil {
			continue
		}
		if !reachable(tree, *q, answered, activated) {
			if _, ok := answered[rf]; !ok {
				continue
			}
		}
		required = append(required, rf)
		if _, ok := answered[rf]; ok {
			answeredRequired = append(answeredRequired, rf)
		} else {
			missing = append(missing, rf)
		}
	}

	denom := len(required)
	if denom == 0 {
		denom = 1
	}

	return types.CompletionStatus{
		IsComplete:       len(missing) == 0,
		RequiredTotal:    len(required),
		RequiredAnswered: len(answeredRequired),
		RequiredMissing:  missing,
		TotalAnswered:    len(answered),
		CompletionPct:    types.Round2(float64(len(answeredRequired)) / float64(denom) * 100),
	}, nil
}

// QuoteParams assembles the structured handoff from the clarify stage to
// the calculation engine.
func (e *Engine) QuoteParams(jobType types.JobType, answered types.AnsweredFields, description, notes string, photoObservations []string) (types.QuoteParams, error) {
	if _, err := e.registry.Tree(jobType); err != nil {
		return types.QuoteParams{}, fmt.Errorf("cannot build quote params: %w", err)
	}
	fields := make(types.AnsweredFields, len(answered))
	for k, v := range answered {
		fields[k] = v
	}
	return types.QuoteParams{
		JobType:           jobType,
		Fields:            fields,
		Description:       description,
		Notes:             notes,
		PhotoObservations: photoObservations,
	}, nil
}

// branchActivated collects the child question ids unlocked by the answers
// given so far.
func branchActivated(tree *types.QuestionTree, answered types.AnsweredFields) map[string]bool {
	activated := make(map[string]bool)
	for _, q := range tree.Questions {
		if len(q.Branches) == 0 {
			continue
		}
		value, ok := answered[q.ID]
		if !ok {
			continue
		}
		for _, child := range q.Branches[value] {
			activated[child] = true
		}
	}
	return activated
}

// reachable reports whether a question is currently surfaced: top-level
// questions always are; dependent questions need their parent answered and,
// when the parent branches, an activating answer.
func reachable(tree *types.QuestionTree, q types.Question, answered types.AnsweredFields, activated map[string]bool) bool {
	if q.DependsOn == "" {
		return true
	}
	if _, ok := answered[q.DependsOn]; !ok {
		return false
	}
	parent := findQuestion(tree, q.DependsOn)
	if parent != nil && len(parent.Branches) > 0 {
		return activated[q.ID]
	}
	return true
}

func findQuestion(tree *types.QuestionTree, id string) *types.Question {
	for i := range tree.Questions {
		if tree.Questions[i].ID == id {
			return &tree.Questions[i]
		}
	}
	return nil
}
