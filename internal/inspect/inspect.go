package inspect

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/offsettree/offsettree"
)

// Config controls Run's appearance.
type Config struct {
	Theme Theme
}

// Run opens a terminal screen and lets a user step through the tree's
// shape interactively, editing a scratch copy so the original tree
// passed in is never mutated:
//
//	j/down, k/up    select a line
//	i               InsertAfter the selected line
//	d               Remove the selected line
//	q, Esc, Ctrl-C  quit
//
// Each edit redraws immediately, so a rotation or rebalance is visible
// as the node positions shift.
func Run(tree *offsettree.Tree, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("inspect: creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("inspect: initializing screen: %w", err)
	}
	defer screen.Fini()

	scratch, err := cloneTree(tree)
	if err != nil {
		return fmt.Errorf("inspect: cloning tree: %w", err)
	}

	var selected uint32
	var status string

	draw(screen, scratch, selected, status, cfg.Theme)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, scratch, selected, status, cfg.Theme)

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				if selected+1 < scratch.Len() {
					selected++
				}
				status = ""
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				if selected > 0 {
					selected--
				}
				status = ""
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'i':
				if err := scratch.InsertAfter(selected); err != nil {
					status = err.Error()
				} else {
					status = fmt.Sprintf("inserted after line %d", selected)
				}
			case ev.Rune() == 'd':
				if err := scratch.Remove(selected); err != nil {
					status = err.Error()
				} else {
					status = fmt.Sprintf("removed line %d", selected)
					if selected >= scratch.Len() && selected > 0 {
						selected--
					}
				}
			}
			draw(screen, scratch, selected, status, cfg.Theme)
		}
	}
}

// cloneTree builds an independent copy of tree by re-deriving its
// offsets through the same bulk-construction path New itself uses,
// so Run's scratch edits never touch the caller's tree.
func cloneTree(tree *offsettree.Tree) (*offsettree.Tree, error) {
	offsets := make([]int64, 0, tree.Len())
	it := tree.Nodes()
	for it.Next() {
		offsets = append(offsets, it.View().Offset)
	}
	return offsettree.NewFromOffsets(offsets)
}

func draw(screen tcell.Screen, tree *offsettree.Tree, selected uint32, status string, theme Theme) {
	screen.Clear()
	width, height := screen.Size()

	positions := Layout(tree, width)
	for _, p := range positions {
		style := tcell.StyleDefault.Foreground(BalanceColor(p.Balance, theme))
		if p.Lnum == selected {
			style = style.Reverse(true)
		}
		label := []rune(fmt.Sprintf("%d", p.Lnum))
		for i, r := range label {
			col := p.Col + i
			if col >= width {
				break
			}
			screen.SetContent(col, p.Row, r, nil, style)
		}
	}

	help := "j/k select  i insert-after  d remove  q quit"
	drawText(screen, 0, height-2, width, help, tcell.StyleDefault.Dim(true))

	if off, err := tree.Get(selected); err == nil {
		line := fmt.Sprintf("line %d  offset %d  %d lines  %s", selected, off, tree.Len(), status)
		drawText(screen, 0, height-1, width, line, tcell.StyleDefault)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= width {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
