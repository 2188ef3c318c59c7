package inspect

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/offsettree/offsettree"
)

const defaultWidth = 80

// TerminalWidth returns the current terminal width for fd, falling back
// to defaultWidth when fd isn't a terminal (piped output, CI logs).
func TerminalWidth(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Render writes a one-shot ASCII dump of tree's shape to w: one line per
// row of the tree, each node drawn as its line number at the column
// Layout assigns it. This is the non-interactive counterpart to Run, for
// piping into a file or a CI log where a live tcell screen isn't usable.
func Render(w io.Writer, tree *offsettree.Tree, width int) error {
	positions := Layout(tree, width)
	maxRow := MaxRow(positions)
	if maxRow < 0 {
		return nil
	}

	rows := make([][]rune, maxRow+1)
	for r := range rows {
		row := make([]rune, width)
		for i := range row {
			row[i] = ' '
		}
		rows[r] = row
	}

	for _, p := range positions {
		label := fmt.Sprintf("%d", p.Lnum)
		for i, r := range label {
			col := p.Col + i
			if col >= width {
				break
			}
			rows[p.Row][col] = r
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
