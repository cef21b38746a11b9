package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-cascade/internal/match3"
)

var (
	flagSimBoard  string
	flagSimScript string
	flagSimMoves  int
	flagSimFormat string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless and print every event",
	Long: `Run the match-3 engine without a terminal UI.

With --script, the selects listed in the YAML scenario are replayed in
order. Without it, an auto-player makes up to --moves swaps, always
taking the first legal swap. Every engine event is printed, followed by
a summary. The same seed and script always produce the same output.

Scenario file:
  seed: 42          # optional, overrides --seed
  width: 8          # optional board size and palette
  height: 8
  palette: 6
  board: |          # optional fixture, one letter per tile (RGBYPOCW)
    RGBYPORG
    ...
  selects:
    - [3, 4]
    - [3, 5]

Examples:
  cascade simulate --seed 42 --moves 20
  cascade simulate --script replay.yaml --format json
  cascade simulate --board fixture.txt --moves 5`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimBoard, "board", "", "Board fixture file (overrides the scenario board)")
	simulateCmd.Flags().StringVar(&flagSimScript, "script", "", "YAML scenario with selects to replay")
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 10, "Swaps made by the auto-player when no script is given")
	simulateCmd.Flags().StringVar(&flagSimFormat, "format", "text", "Output format: text or json")
}

// scenario is the YAML description of a headless run.
type scenario struct {
	Seed    *int64  `yaml:"seed"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Palette int     `yaml:"palette"`
	Board   string  `yaml:"board"`
	Selects [][]int `yaml:"selects"`
}

// simSummary is printed after the event log.
type simSummary struct {
	Seed        int64  `json:"seed"`
	Selects     int    `json:"selects"`
	Swaps       int    `json:"swaps"`
	Rejected    int    `json:"rejected"`
	Errors      int    `json:"errors"`
	Score       int    `json:"score"`
	BestCascade int    `json:"best_cascade"`
	SoftLocked  bool   `json:"soft_locked"`
	Board       string `json:"board"`
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimFormat != "text" && flagSimFormat != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", flagSimFormat)
	}

	var sc scenario
	if flagSimScript != "" {
		var err error
		if sc, err = loadScenario(flagSimScript); err != nil {
			return err
		}
	}
	if flagSimBoard != "" {
		data, err := os.ReadFile(flagSimBoard)
		if err != nil {
			return fmt.Errorf("read board: %w", err)
		}
		sc.Board = string(data)
	}

	seed := flagSeed
	if sc.Seed != nil {
		seed = *sc.Seed
	}

	sim := &simulation{
		out:    os.Stdout,
		format: flagSimFormat,
		logger: newLogger("simulate"),
	}
	_, err := sim.run(sc, seed, flagSimMoves)
	return err
}

// loadScenario reads and checks a scenario file.
func loadScenario(path string) (scenario, error) {
	var sc scenario

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	for i, sel := range sc.Selects {
		if len(sel) != 2 {
			return sc, fmt.Errorf("scenario %s: select %d: want [row, col], got %v", path, i, sel)
		}
	}
	return sc, nil
}

// simulation drives an engine and writes its events.
type simulation struct {
	out    io.Writer
	format string
	logger *log.Logger

	seq     int
	step    string
	summary simSummary
	err     error
}

func (s *simulation) run(sc scenario, seed int64, moves int) (simSummary, error) {
	cfg := match3.DefaultConfig()
	if sc.Width > 0 {
		cfg.Width = sc.Width
	}
	if sc.Height > 0 {
		cfg.Height = sc.Height
	}
	if sc.Palette > 0 {
		cfg.Palette = sc.Palette
	}
	cfg.Seed = seed

	opts := []match3.Option{match3.WithListener(s.onEvent)}
	if strings.TrimSpace(sc.Board) != "" {
		b, err := match3.ParseBoard(strings.TrimSpace(sc.Board))
		if err != nil {
			return s.summary, fmt.Errorf("board fixture: %w", err)
		}
		opts = append(opts, match3.WithBoard(b))
	}

	s.summary = simSummary{Seed: seed}
	s.step = "init"

	engine, err := match3.New(cfg, opts...)
	if err != nil {
		return s.summary, err
	}
	s.logger.Debug("engine ready", "seed", seed, "width", cfg.Width, "height", cfg.Height, "palette", cfg.Palette)

	if sc.Selects != nil {
		for i, sel := range sc.Selects {
			s.step = fmt.Sprintf("select %d", i+1)
			s.selectAt(engine, match3.P(sel[0], sel[1]))
		}
	} else {
		s.autoPlay(engine, moves)
	}

	_, ok := engine.Hint()
	s.summary.SoftLocked = !ok
	s.summary.Score = engine.Score()
	s.summary.Board = engine.Snapshot().String()
	s.writeSummary()

	return s.summary, s.err
}

func (s *simulation) autoPlay(engine *match3.Engine, moves int) {
	for i := range moves {
		swap, ok := engine.Hint()
		if !ok {
			s.logger.Debug("no legal swap left", "after", i)
			return
		}
		s.step = fmt.Sprintf("move %d", i+1)
		s.selectAt(engine, swap.A)
		s.selectAt(engine, swap.B)
	}
}

func (s *simulation) selectAt(engine *match3.Engine, pos match3.Position) {
	s.summary.Selects++

	out, err := engine.Select(pos)
	if err != nil {
		s.summary.Errors++
		s.logger.Debug("select failed", "pos", pos, "error", err)
		s.write(fmt.Sprintf("%s: select %s: %v", s.step, pos, err),
			map[string]any{"step": s.step, "kind": "error", "pos": pos, "error": err.Error()})
		return
	}

	switch out {
	case match3.OutcomeSwapCommitted:
		s.summary.Swaps++
	case match3.OutcomeSwapRejected:
		s.summary.Rejected++
	}
}

func (s *simulation) onEvent(ev match3.Event) {
	s.seq++
	s.logger.Debug("event", "seq", s.seq, "step", s.step, "kind", ev.Kind())

	if st, ok := ev.(match3.Stable); ok && s.step != "init" {
		s.summary.BestCascade = max(s.summary.BestCascade, st.CascadeCount)
	}

	s.write(fmt.Sprintf("#%d %s: %s %s", s.seq, s.step, ev.Kind(), describe(ev)),
		map[string]any{"seq": s.seq, "step": s.step, "kind": ev.Kind().String(), "event": ev})
}

// describe renders the payload of an event for the text format.
func describe(ev match3.Event) string {
	switch ev := ev.(type) {
	case match3.TilesRemoved:
		return fmt.Sprintf("cascade=%d +%d %s", ev.Cascade, ev.ScoreDelta, joinPositions(ev.Positions))
	case match3.GravityApplied:
		parts := make([]string, len(ev.Moves))
		for i, m := range ev.Moves {
			parts[i] = fmt.Sprintf("%s->%s", m.From, m.To)
		}
		return fmt.Sprintf("moves=%d %s", len(ev.Moves), strings.Join(parts, " "))
	case match3.Refilled:
		parts := make([]string, len(ev.Positions))
		for i, p := range ev.Positions {
			parts[i] = fmt.Sprintf("%s=%c", p, ev.Tiles[i].Rune())
		}
		return strings.Join(parts, " ")
	case match3.Stable:
		return fmt.Sprintf("total=+%d cascades=%d", ev.TotalScoreDelta, ev.CascadeCount)
	case match3.SwapRejected:
		return fmt.Sprintf("%s<->%s", ev.A, ev.B)
	}
	return ""
}

func joinPositions(ps []match3.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (s *simulation) writeSummary() {
	sum := s.summary
	if s.format == "json" {
		s.write("", map[string]any{"summary": sum})
		return
	}

	soft := "no"
	if sum.SoftLocked {
		soft = "yes"
	}
	s.write(strings.Join([]string{
		"--- summary ---",
		fmt.Sprintf("seed: %d", sum.Seed),
		fmt.Sprintf("selects: %d (swaps %d, rejected %d, errors %d)", sum.Selects, sum.Swaps, sum.Rejected, sum.Errors),
		fmt.Sprintf("score: %d", sum.Score),
		fmt.Sprintf("best cascade: x%d", max(sum.BestCascade, 1)),
		"soft locked: " + soft,
		"board:",
		sum.Board,
	}, "\n"), nil)
}

// write prints one record in the selected format. The first write error
// sticks and suppresses further output.
func (s *simulation) write(text string, record map[string]any) {
	if s.err != nil {
		return
	}
	if s.format == "json" {
		if record == nil {
			return
		}
		s.err = json.NewEncoder(s.out).Encode(record)
		return
	}
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		s.err = fmt.Errorf("write output: %w", err)
	}
}
