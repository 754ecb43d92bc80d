// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/lingodiff/lingodiff/internal/attrs"
	"github.com/lingodiff/lingodiff/internal/config"
	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/filters"
	"github.com/lingodiff/lingodiff/internal/log"
)

// Dataset is a command result ready for output. Raw is the command's natural
// JSON document, written verbatim for --output=raw. Rows is a JSON array of
// objects, one per rendered line, that attrs, filters and sorting work on.
type Dataset struct {
	Raw  []byte
	Rows []byte
}

// InterfaceToString converts a row value to a string. nil becomes the
// optional emptyValue, "" by default.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if value == nil {
		if len(emptyValue) > 0 {
			return emptyValue[0]
		}
		return ""
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// cellString renders one table cell. An absent value is "-", null is "null"
// and an empty string is "" so the three read differently.
func cellString(row map[string]interface{}, key string) string {
	value, ok := row[key]
	switch {
	case !ok:
		return "-"
	case value == nil:
		return "null"
	case value == "":
		return `""`
	}
	return InterfaceToString(value)
}

// SliceDiceSpit filters, transforms, sorts and renders a dataset according to
// the command's --output, --filter and --sort flags. The optional postProcess
// callback runs on the final rows before text rendering.
func SliceDiceSpit(ds Dataset,
	al attrs.AttrList,
	cmd *cli.Command,
	w io.Writer,
	postProcess func([]map[string]interface{}) error) error {

	if w == nil {
		w = os.Stdout
	}

	output := cmd.String("output")
	if output == "raw" {
		_, err := w.Write(ds.Raw)
		return err
	}

	rows := filters.FilterDataset(gjson.ParseBytes(ds.Rows), al, cmd.String("filter"))
	log.Debugf("rows after filter: %d", len(rows))

	for _, row := range rows {
		for _, attr := range al {
			if attr.TransformSpec == "" {
				continue
			}
			if v, ok := row[attr.OutputKey]; ok {
				row[attr.OutputKey] = attr.Transform(v)
			}
		}
	}

	SortDataset(rows, cmd.String("sort"))

	switch output {
	case "json", "yaml":
		doc := orderedRows(rows, al)
		var out []byte
		var err error
		if output == "json" {
			out, err = document.Encode(doc, "")
		} else {
			out, err = yaml.Marshal(doc)
		}
		if err != nil {
			return fmt.Errorf("%s marshal: %w", output, err)
		}
		if output == "json" {
			out = append(out, '\n')
		}
		_, err = w.Write(out)
		return err
	default:
		if postProcess != nil {
			if err := postProcess(rows); err != nil {
				return err
			}
		}
		TableWriter(rows, al, cmd, w)
	}

	return nil
}

// orderedRows turns rows into a document whose objects keep the attrs'
// order rather than Go's map order. Absent values stay absent.
func orderedRows(rows []map[string]interface{}, al attrs.AttrList) document.Value {
	items := make([]document.Value, 0, len(rows))
	included := al.Included()
	for _, row := range rows {
		m := document.NewMapping()
		for _, attr := range included {
			if v, ok := row[attr.OutputKey]; ok {
				m.Set(attr.OutputKey, document.FromInterface(v))
			}
		}
		items = append(items, document.ObjectValue(m))
	}
	return document.ArrayValue(items...)
}

// TableWriter renders rows as a table honoring the color, titles and padding
// flags. Header and footer lines come from the command's Metadata.
func TableWriter(
	rows []map[string]interface{},
	al attrs.AttrList,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") && isTerminal(w) {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Bold(true).Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	if header, ok := cmd.Metadata["header"].(string); ok && header != "" {
		fmt.Fprintln(w, headerStyle.Render(header))
	}

	if len(rows) > 0 {
		included := al.Included()

		cells := make([][]string, 0, len(rows))
		for _, row := range rows {
			line := make([]string, 0, len(included))
			for _, attr := range included {
				line = append(line, cellString(row, attr.OutputKey))
			}
			cells = append(cells, line)
		}

		pad := int(cmd.Int("padding"))
		t := table.New().
			BorderBottom(false).
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false).
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = headerStyle
				case row%2 == 0:
					style = evenRowStyle
				default:
					style = oddRowStyle
				}

				if col > 0 {
					style = style.PaddingLeft(pad)
				}

				return style
			}).
			Headers().
			Rows(cells...)

		if cmd.Bool("titles") {
			headers := make([]string, 0, len(included))
			for _, attr := range included {
				headers = append(headers, attr.OutputKey)
			}

			// https://github.com/charmbracelet/lipgloss/issues/261
			t = t.Headers(headers...).BorderHeader(false)
		}
		fmt.Fprintln(w, t)
	}

	if footer, ok := cmd.Metadata["footer"].(string); ok && footer != "" {
		fmt.Fprintln(w, headerStyle.Render(footer))
	}
}

// isTerminal reports whether w is a terminal. Color codes are only written
// to terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that we can
// make sure output is reasonably visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// An explicit color in the config wins, otherwise pick a default that
	// suits the terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
