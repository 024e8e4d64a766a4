package main

import (
	"fmt"
	"strings"

	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/sim"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <path|name>",
	Short: "Print a coloured map of a level",
	Long: `Prints the level grid with one glyph per tile, coloured by kind.

Examples:
  dinotool preview level2
  dinotool preview mylevels/cave.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

type glyph struct {
	char  rune
	style lipgloss.Style
}

var glyphs = map[sim.Kind]glyph{
	sim.KindWall:     {'#', lipgloss.NewStyle().Foreground(lipgloss.Color("3"))},
	sim.KindWater:    {'~', lipgloss.NewStyle().Foreground(lipgloss.Color("4"))},
	sim.KindThorns:   {'^', lipgloss.NewStyle().Foreground(lipgloss.Color("1"))},
	sim.KindIce:      {'=', lipgloss.NewStyle().Foreground(lipgloss.Color("14"))},
	sim.KindThinIce:  {'-', lipgloss.NewStyle().Foreground(lipgloss.Color("6"))},
	sim.KindTree:     {'T', lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
	sim.KindFlower:   {'*', lipgloss.NewStyle().Foreground(lipgloss.Color("13"))},
	sim.KindSnake:    {'s', lipgloss.NewStyle().Foreground(lipgloss.Color("10"))},
	sim.KindPtero:    {'v', lipgloss.NewStyle().Foreground(lipgloss.Color("5"))},
	sim.KindFrog:     {'f', lipgloss.NewStyle().Foreground(lipgloss.Color("10"))},
	sim.KindPlant:    {'p', lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
	sim.KindSpit:     {'o', lipgloss.NewStyle().Foreground(lipgloss.Color("11"))},
	sim.KindYeti:     {'Y', lipgloss.NewStyle().Foreground(lipgloss.Color("15"))},
	sim.KindMushroom: {'m', lipgloss.NewStyle().Foreground(lipgloss.Color("9"))},
	sim.KindGem:      {'$', lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)},
	sim.KindGemLife:  {'+', lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)},
	sim.KindMammoth:  {'M', lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)},
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func runPreview(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}
	fmt.Println(headerStyle.Render(Summary(args[0], lvl)))
	fmt.Print(Preview(lvl, true))
	return nil
}

// Preview draws the grid one row per line. Plain output leaves the glyphs
// unstyled.
func Preview(lvl *leveldata.Level, styled bool) string {
	g := sim.NewGrid(lvl)
	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			e := g.At(row, col)
			if e == nil {
				b.WriteByte(' ')
				continue
			}
			gl, ok := glyphs[e.Base().Kind]
			if !ok {
				b.WriteByte('?')
				continue
			}
			if styled {
				b.WriteString(gl.style.Render(string(gl.char)))
			} else {
				b.WriteRune(gl.char)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
