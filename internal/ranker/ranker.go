// Package ranker reduces the candidate action multiset to the bounded,
// ordered list handed to the presentation layer.
package ranker

// #region imports
import (
	"math"
	"sort"

	"github.com/tryangle/coach-controller/internal/rules"
)

// #endregion imports

// #region config

// Config bounds the result list.
type Config struct {
	TopK int
}

// DefaultConfig returns the standard top-3 selection.
func DefaultConfig() Config {
	return Config{TopK: 3}
}

// #endregion config

// #region select

// Select orders and truncates candidate actions. A Critical action
// suppresses everything else for the frame. Otherwise at most one action
// per category survives (the most severe), the survivors are ordered by
// (priority, severity desc, insertion index), and the list is cut to K.
// The insertion-index tiebreak makes the order total; nothing depends on
// map iteration.
func Select(candidates []rules.Action, cfg Config) []rules.Action {
	if len(candidates) == 0 {
		return nil
	}

	for _, a := range candidates {
		if a.Category == rules.CategoryCritical {
			return []rules.Action{a}
		}
	}

	type indexed struct {
		action rules.Action
		idx    int
	}

	// One survivor per category: most severe wins, earlier insertion on tie.
	byCategory := make(map[rules.Category]indexed, len(candidates))
	for i, a := range candidates {
		prev, ok := byCategory[a.Category]
		if !ok || math.Abs(a.Magnitude) > math.Abs(prev.action.Magnitude) {
			byCategory[a.Category] = indexed{action: a, idx: i}
		}
	}

	survivors := make([]indexed, 0, len(byCategory))
	for _, v := range byCategory {
		survivors = append(survivors, v)
	}
	sort.Slice(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.action.Priority != b.action.Priority {
			return a.action.Priority < b.action.Priority
		}
		sa, sb := math.Abs(a.action.Magnitude), math.Abs(b.action.Magnitude)
		if sa != sb {
			return sa > sb
		}
		return a.idx < b.idx
	})

	k := cfg.TopK
	if k <= 0 {
		k = DefaultConfig().TopK
	}
	if len(survivors) > k {
		survivors = survivors[:k]
	}

	out := make([]rules.Action, len(survivors))
	for i, s := range survivors {
		out[i] = s.action
	}
	return out
}

// #endregion select
