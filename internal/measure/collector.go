// Package measure walks the tracked command files and prompt directories and
// assembles full measurement snapshots.
package measure

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"tikictx/internal/model"
	"tikictx/internal/targets"
	"tikictx/internal/tokenizer"
)

// Collector measures files under a project root with an injected token
// counter.
type Collector struct {
	root    string
	counter tokenizer.Counter
}

// New returns a Collector rooted at root.
func New(root string, counter tokenizer.Counter) *Collector {
	return &Collector{root: root, counter: counter}
}

// MeasureFile reads the file at the given root-relative path and returns its
// token and line counts. Any read failure degrades to a zero metric: a
// partial report is more useful than an aborted one, and downstream
// comparison logic treats zero defaults as safe.
func (c *Collector) MeasureFile(relPath string) model.FileMetric {
	data, err := os.ReadFile(filepath.Join(c.root, relPath))
	if err != nil {
		return model.FileMetric{}
	}

	content := string(data)
	return model.FileMetric{
		Tokens: c.counter.Count(content),
		// Segments when split on '\n'; an empty file is one empty segment.
		Lines: strings.Count(content, "\n") + 1,
	}
}

// CollectCommands measures every tracked command file in declaration order.
func (c *Collector) CollectCommands() *model.CommandSet {
	set := orderedmap.New[string, model.CommandMetric]()
	for _, cmd := range targets.Commands {
		fm := c.MeasureFile(cmd.Path)
		set.Set(cmd.Name, model.CommandMetric{
			Path:      cmd.Path,
			Tokens:    fm.Tokens,
			Lines:     fm.Lines,
			PctOf200K: round2(float64(fm.Tokens) / targets.ContextBudget * 100),
		})
	}
	return set
}

// CollectPromptDirs measures the markdown files directly inside each prompt
// directory (non-recursive). Directories that do not exist, or contain no
// markdown files, are omitted rather than reported as errors.
func (c *Collector) CollectPromptDirs() *orderedmap.OrderedMap[string, model.DirectoryMetrics] {
	result := orderedmap.New[string, model.DirectoryMetrics]()

	for _, dir := range targets.PromptDirs {
		entries, err := os.ReadDir(filepath.Join(c.root, dir))
		if err != nil {
			continue
		}

		dm := model.DirectoryMetrics{
			Files: orderedmap.New[string, model.FileMetric](),
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			fm := c.MeasureFile(filepath.Join(dir, entry.Name()))
			dm.Files.Set(entry.Name(), fm)
			dm.TotalTokens += fm.Tokens
			dm.TotalLines += fm.Lines
		}

		if dm.Files.Len() > 0 {
			result.Set(dir, dm)
		}
	}

	return result
}

// BuildInvocation estimates the token cost of a typical invocation of the
// designated command: live measurements for the command file and CLAUDE.md,
// fixed allowances for everything that cannot be read off disk.
func (c *Collector) BuildInvocation() model.InvocationEstimate {
	execPath, _ := targets.CommandPath(targets.DesignatedCommand)

	comps := orderedmap.New[string, int]()
	comps.Set("claude_code_system_prompt", targets.SystemPromptTokens)
	comps.Set("execute_md", c.MeasureFile(execPath).Tokens)
	comps.Set("claude_md", c.MeasureFile(targets.ClaudeMDPath).Tokens)
	comps.Set("plan_file", targets.PlanFileTokens)
	comps.Set("prev_summaries", targets.PrevSummariesTokens)

	total := 0
	for pair := comps.Oldest(); pair != nil; pair = pair.Next() {
		total += pair.Value
	}

	return model.InvocationEstimate{
		Components:  comps,
		TotalTokens: total,
		Remaining:   targets.ContextBudget - total,
		PctUsed:     round2(float64(total) / targets.ContextBudget * 100),
	}
}

// Snapshot performs a full measurement run and assembles the result.
func (c *Collector) Snapshot() *model.Snapshot {
	commands := c.CollectCommands()

	var totals model.Totals
	for pair := commands.Oldest(); pair != nil; pair = pair.Next() {
		totals.AllTokens += pair.Value.Tokens
		totals.AllLines += pair.Value.Lines
	}

	return &model.Snapshot{
		Timestamp:         time.Now().Format(time.RFC3339),
		Commands:          commands,
		ExecuteInvocation: c.BuildInvocation(),
		PromptFiles:       c.CollectPromptDirs(),
		Totals:            totals,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
