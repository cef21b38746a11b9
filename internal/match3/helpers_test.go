package match3

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptSource replays fixed draws and panics once they run out, so a test
// fails loudly if the engine draws more tiles than expected.
type scriptSource struct {
	vals []int
	pos  int
}

func script(vals ...int) *scriptSource {
	return &scriptSource{vals: vals}
}

func (s *scriptSource) IntN(n int) int {
	if s.pos >= len(s.vals) {
		panic(fmt.Sprintf("script exhausted after %d draws", s.pos))
	}
	v := s.vals[s.pos]
	s.pos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted draw %d outside [0, %d)", v, n))
	}
	return v
}

func (s *scriptSource) remaining() int {
	return len(s.vals) - s.pos
}

// 8x8 pattern without runs: tile (3*row + col) % 6.
var baseRows = []string{
	"RGBYPORG",
	"YPORGBYP",
	"RGBYPORG",
	"YPORGBYP",
	"RGBYPORG",
	"YPORGBYP",
	"RGBYPORG",
	"YPORGBYP",
}

func mustBoard(t testing.TB, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(strings.Join(rows, "\n"))
	require.NoError(t, err)
	return b
}

// withRows returns baseRows with the given rows replaced.
func withRows(repl map[int]string) []string {
	rows := append([]string(nil), baseRows...)
	for r, s := range repl {
		rows[r] = s
	}
	return rows
}

// recorder collects events in emission order.
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind()
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
}

func newFixtureEngine(t testing.TB, rows []string, src IntNSource, opts ...Option) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	cfg := DefaultConfig()
	all := append([]Option{WithBoard(mustBoard(t, rows...)), WithSource(src)}, opts...)
	e, err := New(cfg, all...)
	require.NoError(t, err)
	e.Subscribe(rec.listen)
	return e, rec
}
