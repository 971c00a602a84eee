// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/slugger/internal/config"
	"github.com/staranto/slugger/internal/slug"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options control how Spit renders a value.
type Options struct {
	Format string
	Color  bool
	Titles bool
	Filter string
	Sort   string

	// Prefix is prepended to every slug when a Tree is rendered as text.
	Prefix string
}

// OptionsFromCommand reads the common output flags.
func OptionsFromCommand(cmd *cli.Command) Options {
	return Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
		Filter: cmd.String("filter"),
		Sort:   cmd.String("sort"),
	}
}

// Spit writes value to w in the requested format. Trees rendered as text
// become a slug/value table.
func Spit(w io.Writer, value any, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "raw":
		_, err := fmt.Fprintf(w, "%v\n", value)
		return err
	case "json":
		b, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		if t, ok := value.(slug.Tree); ok {
			rows := FilterRows(Rows(slug.FlattenTree(t, opts.Prefix)), opts.Filter)
			SortRows(rows, opts.Sort)
			TableWriter(rows, opts, w)
			return nil
		}
		_, err := fmt.Fprintln(w, InterfaceToString(value))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// TableWriter renders rows as a two column table honoring color, titles and
// padding options.
func TableWriter(rows []Row, opts Options, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color && isTerminal(w) {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 0)
	log.Debugf("padding: %v", pad)

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Slug, InterfaceToString(r.Value, "~")})
	}

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

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("SLUG", "VALUE").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// DumpExamples renders a table of example command usages.
func DumpExamples(w io.Writer, examples [][2]string) {
	if len(examples) == 0 {
		return
	}
	var rows [][]string
	for _, ex := range examples {
		rows = append(rows, []string{ex[0], ex[1]})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Headers("Command", "Description").
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// isTerminal reports whether w is a terminal. Colour escapes are never sent
// to pipes or files.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts a Scalar, or anything JSON can encode, to a
// string. nil becomes the optional empty value.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
