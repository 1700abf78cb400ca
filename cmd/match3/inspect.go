package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match3/internal/config"
	m3 "github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/layouts"
	"github.com/vovakirdan/match3/internal/games/match3/resolve"
)

var (
	flagInspectTypes   int
	flagInspectResolve bool
	flagInspectYAML    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <board>",
	Short: "Analyse a board: runs, special shapes, legal moves",
	Long: `Print the runs, special shapes and legal moves of a board.

The board is a built-in layout name, a layout YAML file, a text file with
one row per line, or "-" to read text from stdin. In text boards a digit or
letter is a token (0-9, then a-z), '.' is empty and '*' is the wild token.

With --resolve the board is settled like after a move: shapes leave wild
tokens, runs clear, tokens fall and refill (using --seed).

Examples:
  match3 inspect shapes
  match3 inspect ./board.txt --resolve --seed 42
  printf '001\n110\n' | match3 inspect - --types 2 --yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&flagInspectTypes, "types", 0, "Number of ordinary token kinds (default: from config)")
	inspectCmd.Flags().BoolVar(&flagInspectResolve, "resolve", false, "Resolve the board and report every cascade")
	inspectCmd.Flags().BoolVar(&flagInspectYAML, "yaml", false, "Print the report as YAML")
}

type runReport struct {
	Dir   string `yaml:"dir"`
	Start string `yaml:"start"`
	Len   int    `yaml:"len"`
}

type shapeReport struct {
	Kind   string `yaml:"kind"`
	Target string `yaml:"target"`
	Type   int    `yaml:"type"`
}

type stepReport struct {
	Combo   int           `yaml:"combo"`
	Shapes  []shapeReport `yaml:"shapes,omitempty"`
	Spawned []string      `yaml:"spawned,omitempty"`
	Runs    []runReport   `yaml:"runs,omitempty"`
	Cleared int           `yaml:"cleared"`
	Points  int           `yaml:"points"`
}

type resolveReport struct {
	Steps  []stepReport `yaml:"steps"`
	Points int          `yaml:"points"`
	Capped bool         `yaml:"capped"`
	Board  []string     `yaml:"board"`
	Hash   string       `yaml:"hash"`
}

type inspectReport struct {
	Rows    int            `yaml:"rows"`
	Cols    int            `yaml:"cols"`
	Types   int            `yaml:"types"`
	Hash    string         `yaml:"hash"`
	Board   []string       `yaml:"board"`
	Runs    []runReport    `yaml:"runs"`
	Shapes  []shapeReport  `yaml:"shapes"`
	Moves   []string       `yaml:"legal_moves"`
	Resolve *resolveReport `yaml:"resolve,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultMatch3Config()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	rules := m3.Rules{Types: cfg.Board.Types, Wild: m3.Token(cfg.Board.Wild)}
	if flagInspectTypes > 0 {
		rules.Types = flagInspectTypes
	}
	if err := rules.Validate(); err != nil {
		return err
	}

	board, err := loadBoard(args[0], rules, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var rs *resolve.Resolver
	if flagInspectResolve {
		scoring := resolve.Scoring{BasePoints: cfg.Scoring.BasePoints, ComboFactor: cfg.Scoring.ComboFactor}
		rs = resolve.New(rules, scoring, cfg.Rules.MaxCascades, flagSeed)
	}
	report := buildReport(board, rules, rs)

	out := cmd.OutOrStdout()
	if flagInspectYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(report)
	}
	printReport(out, report)
	return nil
}

// loadBoard reads a board from stdin, a layout or a text file.
func loadBoard(arg string, rules m3.Rules, stdin io.Reader) (*m3.Grid, error) {
	var text string
	switch ext := strings.ToLower(filepath.Ext(arg)); {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	case ext == ".yaml" || ext == ".yml" || !strings.ContainsAny(arg, `/\.`):
		l, err := layouts.Load(arg)
		if err != nil {
			return nil, err
		}
		return l.Grid(rules)
	default:
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}

	g, err := m3.ParseGrid(text, rules.Wild)
	if err != nil {
		return nil, err
	}
	for i, c := range g.Cells {
		if c.Filled && c.Type != rules.Wild && !rules.IsOrdinary(c.Type) {
			return nil, fmt.Errorf("token %d at %v exceeds %d types (use --types)",
				c.Type, m3.P(i/g.Cols, i%g.Cols), rules.Types)
		}
	}
	return g, nil
}

// buildReport analyses the board. With a resolver the board is resolved in
// place and the cascades are reported too.
func buildReport(g *m3.Grid, rules m3.Rules, rs *resolve.Resolver) inspectReport {
	report := inspectReport{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Types:  rules.Types,
		Hash:   fmt.Sprintf("%016x", g.Hash()),
		Board:  strings.Split(m3.RenderASCII(g, rules.Wild), "\n"),
		Runs:   runReports(m3.FindMatches(g)),
		Shapes: shapeReports(m3.FindSpecialCombinations(g, rules.Wild)),
		Moves:  []string{},
	}
	for _, mv := range resolve.LegalMoves(g, rules) {
		report.Moves = append(report.Moves, fmt.Sprintf("%v-%v", mv.A, mv.B))
	}

	if rs == nil {
		return report
	}

	res := rs.Resolve(g)
	rr := &resolveReport{
		Steps:  make([]stepReport, 0, len(res.Steps)),
		Points: res.Points,
		Capped: res.Capped,
		Board:  strings.Split(m3.RenderASCII(g, rules.Wild), "\n"),
		Hash:   fmt.Sprintf("%016x", g.Hash()),
	}
	for _, s := range res.Steps {
		step := stepReport{
			Combo:   s.Combo,
			Shapes:  shapeReports(s.Shapes),
			Runs:    runReports(s.Runs),
			Cleared: s.Cleared,
			Points:  s.Points,
		}
		for _, p := range s.Spawned {
			step.Spawned = append(step.Spawned, p.String())
		}
		rr.Steps = append(rr.Steps, step)
	}
	report.Resolve = rr
	return report
}

func runReports(runs []m3.Run) []runReport {
	out := make([]runReport, 0, len(runs))
	for _, r := range runs {
		out = append(out, runReport{Dir: r.Dir.String(), Start: r.Start().String(), Len: r.Len})
	}
	return out
}

func shapeReports(shapes []m3.SpecialShape) []shapeReport {
	out := make([]shapeReport, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, shapeReport{Kind: s.Kind.String(), Target: s.Target.String(), Type: int(s.Type)})
	}
	return out
}

func printReport(w io.Writer, r inspectReport) {
	fmt.Fprintf(w, "Board %dx%d, %d types, hash %s\n\n", r.Rows, r.Cols, r.Types, r.Hash)
	for _, row := range r.Board {
		fmt.Fprintf(w, "  %s\n", row)
	}

	fmt.Fprintf(w, "\nRuns: %d\n", len(r.Runs))
	for _, run := range r.Runs {
		fmt.Fprintf(w, "  %s %s len %d\n", run.Dir, run.Start, run.Len)
	}

	fmt.Fprintf(w, "\nSpecial shapes: %d\n", len(r.Shapes))
	for _, s := range r.Shapes {
		fmt.Fprintf(w, "  %-12s target %s type %d\n", s.Kind, s.Target, s.Type)
	}

	fmt.Fprintf(w, "\nLegal moves: %d\n", len(r.Moves))
	for _, m := range r.Moves {
		fmt.Fprintf(w, "  %s\n", m)
	}

	if r.Resolve == nil {
		return
	}

	fmt.Fprintf(w, "\nResolve: %d cascades, %d points", len(r.Resolve.Steps), r.Resolve.Points)
	if r.Resolve.Capped {
		fmt.Fprint(w, " (capped)")
	}
	fmt.Fprintln(w)
	for _, s := range r.Resolve.Steps {
		fmt.Fprintf(w, "  #%d: %d shapes, %d runs, %d cleared, +%d\n",
			s.Combo, len(s.Shapes), len(s.Runs), s.Cleared, s.Points)
	}
	fmt.Fprintf(w, "\nAfter (hash %s):\n", r.Resolve.Hash)
	for _, row := range r.Resolve.Board {
		fmt.Fprintf(w, "  %s\n", row)
	}
}
