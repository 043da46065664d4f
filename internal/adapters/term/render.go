package term

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sahilm/fuzzy"

	"go.trai.ch/binit/internal/core/domain"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// FilterItems narrows items to those whose name fuzzy-matches query, ranked
// best match first. An empty query returns items unchanged.
func FilterItems(items []domain.TrashItem, query string) []domain.TrashItem {
	if query == "" {
		return items
	}

	matches := fuzzy.Find(query, domain.ItemNames(items))
	filtered := make([]domain.TrashItem, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, items[m.Index])
	}
	return filtered
}

// RenderList writes a table of trashed items to w.
func RenderList(w io.Writer, items []domain.TrashItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "The bin is empty.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "TYPE", "ORIGINAL PATH", "TRASHED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Padding(0, 1)
			}
			return tableCellStyle
		})

	for _, item := range items {
		kind := "file"
		if item.IsDir {
			kind = "dir"
		}
		t.Row(item.Name, kind, item.OriginalPath, item.DeletedAt.Format("2006-01-02 15:04"))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
