package compare

import (
	"math"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"tikictx/internal/model"
	"tikictx/internal/targets"
)

// snapWith builds a snapshot whose commands hold the given token counts, in
// the order the names are listed.
func snapWith(timestamp string, names []string, tokens map[string]int) *model.Snapshot {
	set := orderedmap.New[string, model.CommandMetric]()
	for _, name := range names {
		set.Set(name, model.CommandMetric{Tokens: tokens[name]})
	}
	return &model.Snapshot{Timestamp: timestamp, Commands: set}
}

func TestCompare_RowsFollowCurrentOrder(t *testing.T) {
	base := snapWith("2026-01-01T00:00:00Z",
		[]string{"debug.md", "execute.md"},
		map[string]int{"debug.md": 100, "execute.md": 200})
	curr := snapWith("2026-02-01T00:00:00Z",
		[]string{"execute.md", "research.md", "debug.md"},
		map[string]int{"execute.md": 150, "research.md": 50, "debug.md": 100})

	res := Compare(base, curr)

	wantNames := []string{"execute.md", "research.md", "debug.md"}
	if len(res.Rows) != len(wantNames) {
		t.Fatalf("row count = %d, want %d", len(res.Rows), len(wantNames))
	}
	for i, r := range res.Rows {
		if r.Name != wantNames[i] {
			t.Errorf("row %d = %q, want %q", i, r.Name, wantNames[i])
		}
	}

	if res.BaselineTimestamp != "2026-01-01T00:00:00Z" || res.CurrentTimestamp != "2026-02-01T00:00:00Z" {
		t.Error("timestamps not carried through")
	}
}

func TestCompare_ZeroBaselineYieldsZeroPct(t *testing.T) {
	// research.md is new: absent from the baseline entirely.
	base := snapWith("", []string{"execute.md"}, map[string]int{"execute.md": 100})
	curr := snapWith("", []string{"execute.md", "research.md"},
		map[string]int{"execute.md": 100, "research.md": 4000})

	res := Compare(base, curr)

	var row model.DeltaRow
	for _, r := range res.Rows {
		if r.Name == "research.md" {
			row = r
		}
	}

	if row.BaselineTokens != 0 {
		t.Errorf("BaselineTokens = %d, want 0", row.BaselineTokens)
	}
	if row.Change != 4000 {
		t.Errorf("Change = %d, want 4000", row.Change)
	}
	if row.PctChange != 0 {
		t.Errorf("PctChange = %v, want exactly 0 for zero baseline", row.PctChange)
	}
}

func TestCompare_TotalRowSumsRows(t *testing.T) {
	base := snapWith("", []string{"a.md", "b.md"}, map[string]int{"a.md": 10, "b.md": 20})
	curr := snapWith("", []string{"a.md", "b.md", "c.md"},
		map[string]int{"a.md": 5, "b.md": 25, "c.md": 7})

	res := Compare(base, curr)

	sumBase, sumCurr := 0, 0
	for _, r := range res.Rows {
		sumBase += r.BaselineTokens
		sumCurr += r.CurrentTokens
	}

	if res.TotalBaseline != sumBase {
		t.Errorf("TotalBaseline = %d, want %d", res.TotalBaseline, sumBase)
	}
	if res.TotalCurrent != sumCurr {
		t.Errorf("TotalCurrent = %d, want %d", res.TotalCurrent, sumCurr)
	}
	if res.TotalChange != sumCurr-sumBase {
		t.Errorf("TotalChange = %d, want %d", res.TotalChange, sumCurr-sumBase)
	}
}

func TestCompare_EffectiveSavings(t *testing.T) {
	base := snapWith("", []string{"execute.md"}, map[string]int{"execute.md": 10000})
	curr := snapWith("", []string{"execute.md"}, map[string]int{"execute.md": 7000})

	s := Compare(base, curr).Savings

	// 3000 system + 1115 claude.md + 1500 plan + 500 summaries = 6115 fixed.
	if s.Before != 16115 {
		t.Errorf("Before = %d, want 16115", s.Before)
	}
	if s.After != 13115 {
		t.Errorf("After = %d, want 13115", s.After)
	}
	if s.Saved != 3000 {
		t.Errorf("Saved = %d, want 3000", s.Saved)
	}

	wantPct := 3000.0 / 16115.0 * 100 // ~18.6%
	if math.Abs(s.ReductionPct-wantPct) > 1e-9 {
		t.Errorf("ReductionPct = %v, want %v", s.ReductionPct, wantPct)
	}

	wantUSD := 3000.0 / 1_000_000 * targets.CostPerMTokenUSD
	if math.Abs(s.CostSavedUSD-wantUSD) > 1e-9 {
		t.Errorf("CostSavedUSD = %v, want %v", s.CostSavedUSD, wantUSD)
	}
}

func TestCompare_EmptyBaselineSnapshot(t *testing.T) {
	// A baseline with no commands map at all must not panic and must yield
	// zero-valued defaults.
	base := &model.Snapshot{}
	curr := snapWith("", []string{"execute.md"}, map[string]int{"execute.md": 500})

	res := Compare(base, curr)

	if res.TotalBaseline != 0 {
		t.Errorf("TotalBaseline = %d, want 0", res.TotalBaseline)
	}
	if res.Rows[0].PctChange != 0 {
		t.Errorf("PctChange = %v, want 0", res.Rows[0].PctChange)
	}
	if res.Savings.Before != targets.FixedInvocationOverhead {
		t.Errorf("Savings.Before = %d, want fixed overhead %d",
			res.Savings.Before, targets.FixedInvocationOverhead)
	}
}

func TestCompare_RegressionSign(t *testing.T) {
	base := snapWith("", []string{"execute.md"}, map[string]int{"execute.md": 5000})
	curr := snapWith("", []string{"execute.md"}, map[string]int{"execute.md": 6000})

	res := Compare(base, curr)

	if res.Rows[0].Change != 1000 {
		t.Errorf("Change = %d, want +1000", res.Rows[0].Change)
	}
	if res.Savings.Saved != -1000 {
		t.Errorf("Saved = %d, want -1000", res.Savings.Saved)
	}
	if res.Savings.ReductionPct >= 0 {
		t.Errorf("ReductionPct = %v, want negative", res.Savings.ReductionPct)
	}
}
