// Package questions implements the branching question tree engine that
// drives the intake and clarify stages.
package questions

import (
	"fmt"
	"sort"

	"github.com/fabforge/fabquote/internal/logger"
	"github.com/fabforge/fabquote/internal/types"
)

// Registry holds the validated question tree for every job type. Trees are
// registered once at startup; a tree that fails validation keeps its job
// type unavailable rather than serving a broken questionnaire.
type Registry struct {
	trees map[types.JobType]*types.QuestionTree
}

// NewRegistry builds the registry from the built-in tree data, validating
// every tree. Returns an error when any built-in tree is malformed.
func NewRegistry() (*Registry, error) {
	r := &Registry{trees: make(map[types.JobType]*types.QuestionTree)}
	for i := range builtinTrees {
		if err := r.Register(&builtinTrees[i]); err != nil {
			return nil, err
		}
	}
	logger.Infof("Registered %d question trees", len(r.trees))
	return r, nil
}

// Register validates a tree and adds it to the registry
func (r *Registry) Register(tree *types.QuestionTree) error {
	if err := validateTree(tree); err != nil {
		return fmt.Errorf("question tree for %s is invalid: %w", tree.JobType, err)
	}
	r.trees[tree.JobType] = tree
	return nil
}

// Tree returns the question tree for a job type
func (r *Registry) Tree(jobType types.JobType) (*types.QuestionTree, error) {
	tree, ok := r.trees[jobType]
	if !ok {
		return nil, fmt.Errorf("no question tree found for job type: %s", jobType)
	}
	return tree, nil
}

// Available returns the job types with a registered tree, sorted.
func (r *Registry) Available() []types.JobType {
	out := make([]types.JobType, 0, len(r.trees))
	for jt := range r.trees {
		out = append(out, jt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// validateTree enforces the structural invariants of a tree: unique ids,
// valid question types, choice questions carry options, and every
// depends_on, branch target and required field resolves to a real question.
func validateTree(tree *types.QuestionTree) error {
	if tree.JobType == "" {
		return fmt.Errorf("missing job type")
	}
	if len(tree.Questions) == 0 {
		return fmt.Errorf("tree has no questions")
	}

	ids := make(map[string]bool, len(tree.Questions))
	for _, q := range tree.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if ids[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		ids[q.ID] = true

		if !validQuestionType(q.Type) {
			return fmt.Errorf("question %q has invalid type %q", q.ID, q.Type)
		}
		if q.Type == types.QuestionChoice && len(q.Options) == 0 {
			return fmt.Errorf("choice question %q has no options", q.ID)
		}
	}

	for _, q := range tree.Questions {
		if q.DependsOn != "" && !ids[q.DependsOn] {
			return fmt.Errorf("question %q depends on unknown question %q", q.ID, q.DependsOn)
		}
		for value, children := range q.Branches {
			for _, child := range children {
				if !ids[child] {
					return fmt.Errorf("question %q branch %q activates unknown question %q", q.ID, value, child)
				}
			}
		}
	}

	for _, rf := range tree.RequiredFields {
		if !ids[rf] {
			return fmt.Errorf("required field %q has no matching question", rf)
		}
	}

	return nil
}

func validQuestionType(qt types.QuestionType) bool {
	for _, v := range types.ValidQuestionTypes {
		if qt == v {
			return true
		}
	}
	return false
}
