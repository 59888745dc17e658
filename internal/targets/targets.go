// Package targets declares the fixed set of files and budget constants that
// tikictx measures. The lists are deliberately compile-time data: changing
// what gets measured means changing the program, not passing flags, so that
// report ordering and baseline comparisons stay stable across runs.
package targets

// Command pairs a display name with the prompt file it refers to.
// Paths are relative to the project root.
type Command struct {
	Name string
	Path string
}

// Commands is the ordered list of large command files. Report rows and
// comparison rows follow this declaration order.
var Commands = []Command{
	{Name: "execute.md", Path: ".claude/commands/tiki/execute.md"},
	{Name: "plan-issue.md", Path: ".claude/commands/tiki/plan-issue.md"},
	{Name: "define-requirements.md", Path: ".claude/commands/tiki/define-requirements.md"},
	{Name: "research.md", Path: ".claude/commands/tiki/research.md"},
	{Name: "debug.md", Path: ".claude/commands/tiki/debug.md"},
	{Name: "release-yolo.md", Path: ".claude/commands/tiki/release-yolo.md"},
}

// PromptDirs is the ordered list of directories holding extracted prompt
// files. Directories that do not exist yet are skipped during measurement.
var PromptDirs = []string{
	".tiki/prompts/execute",
	".tiki/prompts/plan",
	".tiki/prompts/requirements",
	".tiki/prompts/research",
	".tiki/prompts/debug",
	".tiki/prompts/release",
}

// DesignatedCommand is the command whose size drives the effective-savings
// estimate for a typical invocation.
const DesignatedCommand = "execute.md"

// CommandPath returns the path of the named command, if tracked.
func CommandPath(name string) (string, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c.Path, true
		}
	}
	return "", false
}

// ClaudeMDPath is the project memory file loaded into every invocation.
const ClaudeMDPath = "CLAUDE.md"

// ContextBudget is the context window size everything is measured against.
const ContextBudget = 200_000

// Fixed token allowances for invocation components that cannot be measured
// directly from disk.
const (
	// SystemPromptTokens approximates the Claude Code system prompt.
	SystemPromptTokens = 3000

	// PlanFileTokens approximates a typical plan file loaded by execute.
	PlanFileTokens = 1500

	// PrevSummariesTokens approximates prior phase summaries carried forward.
	PrevSummariesTokens = 500

	// ClaudeMDTokens is the flat CLAUDE.md allowance used on the compare
	// path. Both sides of a comparison get the same allowance so the delta
	// isolates the command file itself.
	ClaudeMDTokens = 1115
)

// FixedInvocationOverhead is the token cost of everything in a typical
// invocation except the command file being measured.
const FixedInvocationOverhead = SystemPromptTokens + ClaudeMDTokens + PlanFileTokens + PrevSummariesTokens

// CostPerMTokenUSD is the reference cost per million input tokens used when
// expressing token savings in dollars (conservative middle-ground rate).
const CostPerMTokenUSD = 5.00
