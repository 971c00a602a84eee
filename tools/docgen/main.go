// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docgen builds slugger's command reference from two inputs: the prose in
// docs/commands/<cmd>.md and the live command tree in internal/command. For
// every command it writes
//
//   - docs/man/share/man1/slugger-<cmd>.1, the prose plus generated Usage and
//     Flags sections rendered through md2man
//   - docs/tldr/slugger-<cmd>.md, built from the prose's Quick examples
//
// and it writes docs/commands/README.md as an index. A command without a
// prose page fails the run unless it is listed in undocumented.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/staranto/slugger/internal/command"
	"github.com/staranto/slugger/internal/meta"
)

const (
	binary  = "slugger"
	homeURL = "https://github.com/staranto/slugger"
)

// undocumented commands are listed in the index but need no prose page.
var undocumented = map[string]bool{
	"completion": true,
	"examples":   true,
}

func main() {
	var (
		root          string
		onlyIfChanged bool
		check         bool
	)

	flag.StringVar(&root, "root", ".", "repo root")
	flag.BoolVar(&onlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.BoolVar(&check, "check", false, "write nothing, fail if any generated file is stale")
	flag.Parse()

	g := generator{
		commandsDir:   filepath.Join(root, "docs", "commands"),
		manDir:        filepath.Join(root, "docs", "man", "share", "man1"),
		tldrDir:       filepath.Join(root, "docs", "tldr"),
		onlyIfChanged: onlyIfChanged,
		check:         check,
	}

	stale, err := g.run(command.NewApp(meta.Meta{}).Commands)
	if err != nil {
		fatalf("%v", err)
	}
	if check && len(stale) > 0 {
		fatalf("stale generated docs:\n  %s", strings.Join(stale, "\n  "))
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

type generator struct {
	commandsDir   string
	manDir        string
	tldrDir       string
	onlyIfChanged bool
	check         bool
}

// run generates every output for cmds and returns the paths whose content
// changed (or, with check, would change).
func (g generator) run(cmds []*cli.Command) (stale []string, err error) {
	if !g.check {
		for _, dir := range []string{g.manDir, g.tldrDir} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating %s: %w", dir, err)
			}
		}
	}

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	var summaries []summary
	for _, cmd := range cmds {
		raw, err := os.ReadFile(filepath.Join(g.commandsDir, cmd.Name+".md"))
		switch {
		case errors.Is(err, fs.ErrNotExist) && undocumented[cmd.Name]:
			summaries = append(summaries, summary{Name: cmd.Name, Short: cmd.Usage})
			continue
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("command %s has no page in %s", cmd.Name, g.commandsDir)
		case err != nil:
			return nil, err
		}

		page := parsePage(string(raw))
		if page.Short == "" {
			page.Short = cmd.Usage
		}
		summaries = append(summaries, summary{Name: cmd.Name, Short: page.Short, Documented: true})

		outputs := map[string][]byte{
			filepath.Join(g.manDir, fmt.Sprintf("%s-%s.1", binary, cmd.Name)):  md2man.Render(renderReference(cmd, string(raw))),
			filepath.Join(g.tldrDir, fmt.Sprintf("%s-%s.md", binary, cmd.Name)): []byte(buildTLDR(cmd.Name, page)),
		}
		for path, b := range outputs {
			changed, err := g.write(path, b)
			if err != nil {
				return nil, err
			}
			if changed {
				stale = append(stale, path)
			}
		}
	}

	index := filepath.Join(g.commandsDir, "README.md")
	changed, err := g.write(index, renderIndex(summaries))
	if err != nil {
		return nil, err
	}
	if changed {
		stale = append(stale, index)
	}

	sort.Strings(stale)
	return stale, nil
}

// write stores b at path and reports whether the content differed from what
// was there. Surrounding whitespace is ignored in the comparison.
func (g generator) write(path string, b []byte) (bool, error) {
	old, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	same := err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(b))
	if g.check || (same && g.onlyIfChanged) {
		return !same, nil
	}
	return !same, os.WriteFile(path, b, 0o644)
}

type summary struct {
	Name       string
	Short      string
	Documented bool
}

func renderIndex(summaries []summary) []byte {
	var b strings.Builder
	b.WriteString("# " + binary + " commands\n\n")
	b.WriteString("<!-- generated by tools/docgen, edit the per-command pages instead -->\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, s := range summaries {
		name := "`" + s.Name + "`"
		if s.Documented {
			name = "[" + name + "](" + s.Name + ".md)"
		}
		b.WriteString("| " + name + " | " + escapeCell(s.Short) + " |\n")
	}
	return []byte(b.String())
}

// renderReference appends Usage and Flags sections generated from cmd to
// the prose page.
func renderReference(cmd *cli.Command, prose string) []byte {
	var b strings.Builder
	b.WriteString(strings.TrimRight(prose, "\n"))
	b.WriteString("\n\n## Usage\n\n")

	usage := cmd.UsageText
	if usage == "" {
		usage = strings.TrimSpace(binary + " " + cmd.Name + " " + cmd.ArgsUsage)
	}
	b.WriteString("    " + usage + " [flags]\n")

	rows := flagRows(cmd.Flags)
	if len(rows) > 0 {
		b.WriteString("\n## Flags\n\n| Flag | Description |\n|---|---|\n")
		for _, r := range rows {
			b.WriteString("| " + r.Names + " | " + escapeCell(r.Usage) + " |\n")
		}
	}
	return []byte(b.String())
}

type flagRow struct {
	Names string
	Usage string
}

// flagRows describes the visible flags, sorted by primary name. Long names
// get "--", single letters "-", and value-taking flags a VALUE placeholder.
func flagRows(flags []cli.Flag) []flagRow {
	var rows []flagRow
	for _, f := range flags {
		if v, ok := f.(interface{ IsVisible() bool }); ok && !v.IsVisible() {
			continue
		}
		var names []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "`-"+n+"`")
			} else {
				names = append(names, "`--"+n+"`")
			}
		}
		if v, ok := f.(interface{ TakesValue() bool }); ok && v.TakesValue() {
			names[0] = strings.TrimSuffix(names[0], "`") + " VALUE`"
		}
		usage := ""
		if u, ok := f.(interface{ GetUsage() string }); ok {
			usage = u.GetUsage()
		}
		rows = append(rows, flagRow{Names: strings.Join(names, ", "), Usage: usage})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Names < rows[j].Names })
	return rows
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// page is what docgen reads out of a prose page.
type page struct {
	Title    string
	Short    string
	Examples []example
}

type example struct {
	Desc string
	Cmd  string
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

func parsePage(md string) page {
	var p page
	if m := h1Re.FindStringSubmatch(md); m != nil {
		p.Title = strings.TrimSpace(m[1])
	}
	p.Short = firstParagraph(section(md, "short description"))
	p.Examples = parseExamples(firstFence(section(md, "quick examples")))
	return p
}

// section returns the text after the line naming header (optionally as a
// markdown heading) up to the next line that names another section. A
// section line is a heading or a short line of words followed by a blank
// line.
func section(md, header string) string {
	lines := strings.Split(md, "\n")
	start := -1
	for i, ln := range lines {
		name := strings.TrimSpace(strings.TrimLeft(ln, "#"))
		if strings.EqualFold(name, header) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	fenced := false
	for i := start; i < len(lines); i++ {
		ln := lines[i]
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			fenced = !fenced
			continue
		}
		if !fenced && isSectionLine(lines, i) {
			return strings.Join(lines[start:i], "\n")
		}
	}
	return strings.Join(lines[start:], "\n")
}

var sectionNameRe = regexp.MustCompile(`^[A-Z][A-Za-z ]{0,40}$`)

func isSectionLine(lines []string, i int) bool {
	ln := lines[i]
	if strings.HasPrefix(ln, "#") {
		return true
	}
	blankBefore := i == 0 || strings.TrimSpace(lines[i-1]) == ""
	blankAfter := i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == ""
	return blankBefore && blankAfter && sectionNameRe.MatchString(ln) && !strings.HasSuffix(ln, ".")
}

func firstParagraph(s string) string {
	var words []string
	for _, ln := range strings.Split(s, "\n") {
		if strings.TrimSpace(ln) == "" {
			if len(words) > 0 {
				break
			}
			continue
		}
		words = append(words, strings.TrimSpace(ln))
	}
	return strings.Join(words, " ")
}

func firstFence(s string) string {
	const fence = "```"
	start := strings.Index(s, fence)
	if start < 0 {
		return ""
	}
	rest := s[start+len(fence):]
	// Drop an info string such as ```sh.
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, fence)
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// parseExamples pairs each "# description" comment with the command line
// after it. Commands without a comment get a generic description.
func parseExamples(block string) []example {
	var exs []example
	desc := ""
	for _, ln := range strings.Split(block, "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: ln})
			desc = ""
		}
	}
	return exs
}

func buildTLDR(cmd string, p page) string {
	var b strings.Builder
	b.WriteString("# " + binary + "-" + cmd + "\n\n")

	short := p.Short
	if short == "" {
		short = p.Title
	}
	if short == "" {
		short = binary + " " + cmd
	}
	b.WriteString("> " + short + "\n")
	b.WriteString("> More information: " + homeURL + ".\n\n")

	exs := p.Examples
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: binary + " " + cmd + " --help"}}
	}
	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ex.Desc + ":\n\n")
		b.WriteString("`" + tldrCommand(ex.Cmd) + "`\n")
	}
	return b.String()
}

var placeholderRe = regexp.MustCompile(`<([A-Za-z_-]+)>`)

// tldrCommand compresses whitespace and rewrites <placeholder> into the
// tldr {{placeholder}} style.
func tldrCommand(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return placeholderRe.ReplaceAllString(s, "{{$1}}")
}
