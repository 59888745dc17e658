// Package compare computes per-command deltas between a baseline snapshot
// and a current one.
package compare

import (
	"tikictx/internal/model"
	"tikictx/internal/targets"
)

// Compare walks the current snapshot's commands in declaration order and
// diffs each against the baseline entry of the same name. Commands absent
// from the baseline diff against a zero metric, so schema drift between
// snapshots never errors.
func Compare(baseline, current *model.Snapshot) model.ComparisonResult {
	res := model.ComparisonResult{
		BaselineTimestamp: baseline.Timestamp,
		CurrentTimestamp:  current.Timestamp,
	}

	if current.Commands != nil {
		for pair := current.Commands.Oldest(); pair != nil; pair = pair.Next() {
			base := baseline.CommandTokens(pair.Key)
			curr := pair.Value.Tokens

			row := model.DeltaRow{
				Name:           pair.Key,
				BaselineTokens: base,
				CurrentTokens:  curr,
				Change:         curr - base,
			}
			if base > 0 {
				row.PctChange = float64(row.Change) / float64(base) * 100
			}

			res.Rows = append(res.Rows, row)
			res.TotalBaseline += base
			res.TotalCurrent += curr
		}
	}

	res.TotalChange = res.TotalCurrent - res.TotalBaseline
	if res.TotalBaseline > 0 {
		res.TotalPctChange = float64(res.TotalChange) / float64(res.TotalBaseline) * 100
	}

	res.Savings = effectiveSavings(baseline, current)

	res.BaselinePromptTokens, _ = baseline.PromptFileTotals()
	res.CurrentPromptTokens, _ = current.PromptFileTotals()

	return res
}

// effectiveSavings estimates how much main-context usage changed for a
// typical invocation of the designated command. The fixed overhead is
// identical on both sides, so the delta isolates the command file itself.
func effectiveSavings(baseline, current *model.Snapshot) model.Savings {
	s := model.Savings{
		Before: targets.FixedInvocationOverhead + baseline.CommandTokens(targets.DesignatedCommand),
		After:  targets.FixedInvocationOverhead + current.CommandTokens(targets.DesignatedCommand),
	}
	s.Saved = s.Before - s.After
	if s.Before > 0 {
		s.ReductionPct = float64(s.Saved) / float64(s.Before) * 100
	}
	s.CostSavedUSD = float64(s.Saved) / 1_000_000 * targets.CostPerMTokenUSD
	return s
}
