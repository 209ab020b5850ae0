package questions

import "github.com/fabforge/fabquote/internal/types"

// builtinTrees collects the question trees shipped with the engine. Each
// trees_*.go file appends its trees at init; NewRegistry validates and
// registers them all.
var builtinTrees []types.QuestionTree
