package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/dothis/internal/client/codec"
)

// cellStyler adjusts the style of a data cell.
type cellStyler func(row, col int, base lipgloss.Style) lipgloss.Style

// printTable writes a borderless table with a rule under the headers.
func (a *App) printTable(headers []string, rows [][]string, styler cellStyler) error {
	header := a.renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := a.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(a.renderer.NewStyle().Faint(true)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if styler != nil {
				return styler(row, col, cell)
			}
			return cell
		})

	_, err := fmt.Fprintln(a.out, t.Render())
	return err
}

// colorColumn paints column col of each row with the matching palette color.
func colorColumn(col int, colors []codec.Color) cellStyler {
	return func(row, c int, base lipgloss.Style) lipgloss.Style {
		if c != col || row < 0 || row >= len(colors) {
			return base
		}
		if hex := colors[row].Hex(); hex != "" {
			return base.Foreground(lipgloss.Color(hex))
		}
		return base
	}
}

func yesNo(b codec.Bool) string {
	if b {
		return "yes"
	}
	return ""
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
