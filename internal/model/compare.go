package model

// DeltaRow is one line of a comparison report: baseline vs current token
// counts for a single named command.
type DeltaRow struct {
	Name           string
	BaselineTokens int
	CurrentTokens  int
	Change         int
	PctChange      float64
}

// Savings estimates the effective context saved for a typical invocation of
// the designated command: fixed overhead plus the command file itself,
// before and after.
type Savings struct {
	Before       int
	After        int
	Saved        int
	ReductionPct float64
	CostSavedUSD float64
}

// ComparisonResult holds per-command deltas in declaration order, the total
// row, and the derived savings estimate.
type ComparisonResult struct {
	BaselineTimestamp string
	CurrentTimestamp  string

	Rows []DeltaRow

	TotalBaseline  int
	TotalCurrent   int
	TotalChange    int
	TotalPctChange float64

	Savings Savings

	// Prompt file totals on each side, for the extracted-files section.
	BaselinePromptTokens int
	CurrentPromptTokens  int
}
