package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paulkoerbitz/git-pivot/internal/category"
	"github.com/paulkoerbitz/git-pivot/internal/config"
	"github.com/paulkoerbitz/git-pivot/internal/history"
	"github.com/paulkoerbitz/git-pivot/internal/pivot"
	"github.com/paulkoerbitz/git-pivot/internal/statistic"
	"github.com/paulkoerbitz/git-pivot/internal/stats"
	"github.com/paulkoerbitz/git-pivot/internal/testable"
)

// opener opens repositories for the tool handlers. Tests may replace it.
var opener testable.GitOpener = testable.DefaultGitOpener

// StatsInput is the input schema for the stats MCP tool.
type StatsInput struct {
	Path       string `json:"path" jsonschema:"Repository path (defaults to current directory)"`
	Statistics string `json:"statistics,omitempty" jsonschema:"Comma-separated statistics to run: authors, punchcard (default: authors,punchcard)"`
	From       string `json:"from,omitempty" jsonschema:"Only include commits on or after this date (YYYY-MM-DD, UTC)"`
	Until      string `json:"until,omitempty" jsonschema:"Only include commits on or before this date (YYYY-MM-DD, UTC)"`
	MaxCommits int    `json:"max_commits,omitempty" jsonschema:"Stop after this many matching commits (0 = unlimited)"`
}

// PivotInput is the input schema for the pivot MCP tool.
type PivotInput struct {
	Path       string `json:"path" jsonschema:"Repository path (defaults to current directory)"`
	X          string `json:"x,omitempty" jsonschema:"Row category, e.g. author, year, day-of-week (default: none)"`
	Y          string `json:"y,omitempty" jsonschema:"Column category, e.g. hour, month (default: none)"`
	Statistic  string `json:"statistic,omitempty" jsonschema:"Statistic to sum: commits, additions, deletions (default: commits)"`
	From       string `json:"from,omitempty" jsonschema:"Only include commits on or after this date (YYYY-MM-DD, UTC)"`
	Until      string `json:"until,omitempty" jsonschema:"Only include commits on or before this date (YYYY-MM-DD, UTC)"`
	MaxCommits int    `json:"max_commits,omitempty" jsonschema:"Stop after this many matching commits (0 = unlimited)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all git-pivot tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Count commits by author and draw a weekday/hour punchcard for a git repository. Returns monospaced text.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleStats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pivot",
		Description: "Sum a commit statistic into a table whose rows and columns are commit categories (author, year, hour, ...). Returns monospaced text.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handlePivot)
}

func handleStats(ctx context.Context, _ *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, any, error) {
	repoPath, settings, err := prepare(input.Path, config.Settings{
		Statistics: splitAndTrim(input.Statistics),
		MaxCommits: input.MaxCommits,
	})
	if err != nil {
		return nil, nil, err
	}

	statistics := make([]stats.PerCommitStatistic, 0, len(settings.Statistics))
	for _, name := range settings.Statistics {
		s, err := stats.New(name)
		if err != nil {
			return nil, nil, err
		}
		statistics = append(statistics, s)
	}

	return run(ctx, repoPath, input.From, input.Until, settings.MaxCommits, statistics...)
}

func handlePivot(ctx context.Context, _ *mcp.CallToolRequest, input PivotInput) (*mcp.CallToolResult, any, error) {
	repoPath, settings, err := prepare(input.Path, config.Settings{
		X:          input.X,
		Y:          input.Y,
		Statistic:  input.Statistic,
		MaxCommits: input.MaxCommits,
	})
	if err != nil {
		return nil, nil, err
	}

	x, err := category.Parse(settings.X)
	if err != nil {
		return nil, nil, fmt.Errorf("x: %w", err)
	}
	y, err := category.Parse(settings.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("y: %w", err)
	}
	stat, err := statistic.Parse(settings.Statistic)
	if err != nil {
		return nil, nil, fmt.Errorf("statistic: %w", err)
	}

	return run(ctx, repoPath, input.From, input.Until, settings.MaxCommits, pivot.New(x, y, stat))
}

// prepare resolves the repository path and merges the tool input over the
// layered config files.
func prepare(path string, in config.Settings) (string, config.Settings, error) {
	repoPath, err := ResolvePath(path)
	if err != nil {
		return "", config.Settings{}, err
	}
	cfg, err := config.LoadLayered(repoPath)
	if err != nil {
		return "", config.Settings{}, err
	}
	return repoPath, config.Merge(cfg, in), nil
}

// run walks the repository once and returns the printed statistics as text.
func run(ctx context.Context, repoPath, from, until string, maxCommits int, statistics ...stats.PerCommitStatistic) (*mcp.CallToolResult, any, error) {
	opts, err := history.ParseRange(from, until, maxCommits)
	if err != nil {
		return nil, nil, err
	}
	walker, err := history.Open(opener, repoPath, opts)
	if err != nil {
		return nil, nil, err
	}

	stats.DisableColor(statistics...)
	var buf bytes.Buffer
	n, err := stats.Run(ctx, walker, &buf, statistics...)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("mcp tool complete", "repo", repoPath, "commits", n)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
