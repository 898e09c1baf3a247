package common

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/crmarques/nfvctl/server"
)

const (
	fieldHeader = "Field"
	valueHeader = "Value"
)

type tableStyle struct {
	border      lipgloss.Border
	borderStyle lipgloss.Style
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

func newTableStyle(color bool) tableStyle {
	style := tableStyle{
		border:      lipgloss.NormalBorder(),
		borderStyle: lipgloss.NewStyle(),
		headerStyle: lipgloss.NewStyle().Padding(0, 1),
		cellStyle:   lipgloss.NewStyle().Padding(0, 1),
	}
	if color {
		style.borderStyle = style.borderStyle.Foreground(lipgloss.Color("240"))
		style.headerStyle = style.headerStyle.Bold(true).Foreground(lipgloss.Color("12"))
	}
	return style
}

func renderTable(w io.Writer, headers []string, rows [][]string, color bool) error {
	style := newTableStyle(color)
	tbl := table.New().
		Border(style.border).
		BorderStyle(style.borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.headerStyle
			}
			return style.cellStyle
		})
	for _, row := range rows {
		tbl.Row(row...)
	}

	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

// RenderObjects prints one row per object with the given columns. Missing
// keys render as empty cells.
func RenderObjects(w io.Writer, columns []string, items []server.Object, color bool) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, FormatCell(item[column]))
		}
		rows = append(rows, row)
	}
	return renderTable(w, columns, rows, color)
}

// RenderFields prints a Field/Value table with keys sorted by name.
func RenderFields(w io.Writer, item server.Object, color bool) error {
	keys := make([]string, 0, len(item))
	for key := range item {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, FormatCell(item[key])})
	}
	return renderTable(w, []string{fieldHeader, valueHeader}, rows, color)
}

func FormatCell(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case map[string]any, []any:
		encoded, err := encodeJSON(typed, "")
		if err != nil {
			return fmt.Sprint(typed)
		}
		return strings.TrimSuffix(string(encoded), "\n")
	default:
		return fmt.Sprint(typed)
	}
}
