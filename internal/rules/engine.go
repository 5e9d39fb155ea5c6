package rules

// #region imports
import (
	"log"
	"sort"
	"sync/atomic"

	"github.com/tryangle/coach-controller/internal/gap"
)

// #endregion imports

// #region engine

// Engine evaluates a closed-world rule registry against a gap set. The
// registry is fixed at construction; there is no runtime mutation.
type Engine struct {
	rules    []Rule
	failures atomic.Uint64
}

// NewEngine builds an engine from the given rules, ordered by ascending
// priority with name as the tiebreaker so evaluation order is total.
func NewEngine(ruleSet []Rule) *Engine {
	ordered := make([]Rule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority() != ordered[j].Priority() {
			return ordered[i].Priority() < ordered[j].Priority()
		}
		return ordered[i].Name() < ordered[j].Name()
	})
	return &Engine{rules: ordered}
}

// Rules returns the registered rule set in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Failures returns the count of isolated rule evaluation failures.
func (e *Engine) Failures() uint64 {
	return e.failures.Load()
}

// #endregion engine

// #region evaluate

// Evaluate runs every rule in priority order and collects candidate
// actions. Each rule sees only (gaps, hist), never another rule's
// output. A Critical action short-circuits the pass: the frame yields
// exactly that one action. A rule that panics is isolated: the failure
// is logged and counted, and the pass continues.
func (e *Engine) Evaluate(gaps []gap.Gap, hist History) []Action {
	var candidates []Action
	for _, r := range e.rules {
		action := e.evalOne(r, gaps, hist)
		if action == nil {
			continue
		}
		if action.Category == CategoryCritical {
			return []Action{*action}
		}
		candidates = append(candidates, *action)
	}
	return candidates
}

func (e *Engine) evalOne(r Rule, gaps []gap.Gap, hist History) (action *Action) {
	defer func() {
		if rec := recover(); rec != nil {
			e.failures.Add(1)
			log.Printf("[RULES] rule %s failed: %v (treated as no action)", r.Name(), rec)
			action = nil
		}
	}()
	return r.Evaluate(gaps, hist)
}

// #endregion evaluate
