package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/automoto/dino/shared/leveldata"
)

// parseLevel builds a level from a header and rows in the text format.
func parseLevel(t *testing.T, header string, rows ...string) *leveldata.Level {
	t.Helper()
	src := header + "\n" + strings.Join(rows, "\n") + "\n"
	lvl, err := leveldata.ParseText(strings.NewReader(src), t.Name())
	require.NoError(t, err)
	return lvl
}

// flatRows returns n rows of the given width: empty air with a floor of
// walls on the last row.
func flatRows(n, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat("a", width)
	}
	rows[n-1] = strings.Repeat("b", width)
	return rows
}

// put replaces the tile at (row, col) with c.
func put(rows []string, row, col int, c byte) {
	b := []byte(rows[row])
	b[col] = c
	rows[row] = string(b)
}

// run steps the attempt n times with the same input and returns the first
// non-zero outcome.
func run(a *Attempt, n int, in Input) (Outcome, int) {
	for i := 0; i < n; i++ {
		if out := a.Step(in, nil); out != OutcomeNone {
			return out, i + 1
		}
	}
	return OutcomeNone, n
}

// countingRenderer records draw calls.
type countingRenderer struct {
	kinds   []Kind
	players int
}

func (c *countingRenderer) DrawEntity(b *Body, _ *Player) { c.kinds = append(c.kinds, b.Kind) }
func (c *countingRenderer) DrawPlayer(*Player) { c.players++ }
