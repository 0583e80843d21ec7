package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gqlfront/diag"
	"gqlfront/source"
)

// Style selects the output layout.
type Style uint8

const (
	// Simple prints one line per diagnostic.
	Simple Style = iota
	// Monochrome prints source snippets with underlines and no escapes.
	Monochrome
	// Colored is Monochrome with ANSI colors.
	Colored
)

func (s Style) String() string {
	switch s {
	case Simple:
		return "simple"
	case Monochrome:
		return "monochrome"
	case Colored:
		return "colored"
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// Options tunes snippet rendering.
type Options struct {
	Style Style
	// Context is the number of extra lines shown around the primary line.
	Context int
	// TabWidth is the display width of a tab; 0 means 4.
	TabWidth int
	// ShowPreview adds a before/after view of each fix edit.
	ShowPreview bool
}

// Render formats the report with default options for style.
func (r Report) Render(style Style) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = r.Write(&b, Options{Style: style})
	return b.String()
}

// Write renders the report to w.
func (r Report) Write(w io.Writer, opts Options) error {
	pal := newPalette(opts.Style == Colored)
	for i := range r.Entries {
		var err error
		if opts.Style == Simple {
			err = r.writeLine(w, &r.Entries[i], pal)
		} else {
			err = r.writeSnippet(w, &r.Entries[i], opts, pal)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type palette struct {
	sev       map[diag.Severity]*color.Color
	secondary *color.Color
	gutter    *color.Color
	bold      *color.Color
	note      *color.Color
	added     *color.Color
	removed   *color.Color
}

func newPalette(colored bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
		},
		secondary: mk(color.FgBlue, color.Bold),
		gutter:    mk(color.FgBlue, color.Bold),
		bold:      mk(color.Bold),
		note:      mk(color.FgCyan),
		added:     mk(color.FgGreen),
		removed:   mk(color.FgRed),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	if c, ok := p.sev[s]; ok {
		return c
	}
	return p.sev[diag.SevInfo]
}

func severityName(s diag.Severity) string {
	return strings.ToLower(s.String())
}

func (r Report) writeLine(w io.Writer, e *Entry, pal palette) error {
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		e.Primary.Path, e.Primary.Start.Line, e.Primary.Start.Col,
		pal.severity(e.Severity).Sprint(severityName(e.Severity)), e.Code.ID(),
		oneLine(e.Message))
	return err
}

// mark is an underline on one source line.
type mark struct {
	line    uint32
	from    int // byte offset in the line, inclusive
	to      int // byte offset in the line, exclusive
	primary bool
	msg     string
}

func (r Report) writeSnippet(w io.Writer, e *Entry, opts Options, pal palette) error {
	var b strings.Builder
	sc := pal.severity(e.Severity)
	fmt.Fprintf(&b, "%s%s\n",
		sc.Sprintf("%s[%s]", severityName(e.Severity), e.Code.ID()),
		pal.bold.Sprint(": "+oneLine(e.Message)))

	var file *source.File
	if r.fs != nil {
		file = r.fs.Get(e.Primary.Span.File)
	}

	var marks []mark
	var foreign []Label
	if file != nil {
		marks = append(marks, markSpan(file, e.Primary, true, ""))
	}
	for _, l := range e.Labels {
		if file == nil || l.Span.File != e.Primary.Span.File {
			foreign = append(foreign, l)
			continue
		}
		marks = append(marks, markSpan(file, l.Location, false, l.Message))
	}

	lines := shownLines(file, e.Primary.Start.Line, marks, opts.Context)
	maxLine := e.Primary.Start.Line
	if len(lines) > 0 {
		maxLine = max(maxLine, lines[len(lines)-1])
	}
	gw := len(strconv.FormatUint(uint64(maxLine), 10))
	pad := strings.Repeat(" ", gw)
	bar := pal.gutter.Sprint("|")

	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", pad, pal.gutter.Sprint("-->"),
		e.Primary.Path, e.Primary.Start.Line, e.Primary.Start.Col)

	if len(lines) > 0 {
		fmt.Fprintf(&b, "%s %s\n", pad, bar)
		tab := opts.TabWidth
		if tab <= 0 {
			tab = 4
		}
		var prev uint32
		for _, ln := range lines {
			if prev != 0 && ln > prev+1 {
				fmt.Fprintf(&b, "%s\n", pal.gutter.Sprint("..."))
			}
			prev = ln
			text := file.GetLine(ln)
			num := strconv.FormatUint(uint64(ln), 10)
			fmt.Fprintf(&b, "%s%s %s %s\n", strings.Repeat(" ", gw-len(num)), pal.gutter.Sprint(num), bar,
				strings.TrimRight(expandTabs(text, tab), " "))
			for _, m := range marks {
				if m.line != ln {
					continue
				}
				col := runewidth.StringWidth(expandTabs(text[:m.from], tab))
				width := max(runewidth.StringWidth(expandTabs(text[m.from:m.to], tab)), 1)
				ch, c := "-", pal.secondary
				if m.primary {
					ch, c = "^", sc
				}
				under := c.Sprint(strings.Repeat(ch, width))
				if m.msg != "" {
					under += " " + c.Sprint(oneLine(m.msg))
				}
				fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, strings.Repeat(" ", col), under)
			}
		}
	}

	eq := pal.gutter.Sprint("=")
	for _, l := range foreign {
		fmt.Fprintf(&b, "%s %s %s %s:%d:%d: %s\n", pad, eq, pal.note.Sprint("label:"),
			l.Path, l.Start.Line, l.Start.Col, oneLine(l.Message))
	}
	for _, n := range e.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, eq, pal.note.Sprint("note:"), oneLine(n))
	}
	for _, f := range e.Fixes {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, eq, pal.note.Sprint("help:"), oneLine(f.Title))
		if !opts.ShowPreview || r.fs == nil {
			continue
		}
		for _, ed := range f.Edits {
			pv, err := buildPreview(r.fs, ed)
			if err != nil {
				continue
			}
			for _, s := range pv.before {
				fmt.Fprintf(&b, "%s %s %s\n", pad, bar, pal.removed.Sprint("- "+s))
			}
			for _, s := range pv.after {
				fmt.Fprintf(&b, "%s %s %s\n", pad, bar, pal.added.Sprint("+ "+s))
			}
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// markSpan clips loc to its first line. Multi-line spans are underlined to
// the end of that line.
func markSpan(f *source.File, loc Location, primary bool, msg string) mark {
	text := f.GetLine(loc.Start.Line)
	from := min(int(loc.Start.Col)-1, len(text))
	to := len(text)
	if loc.End.Line == loc.Start.Line {
		to = min(int(loc.End.Col)-1, len(text))
	}
	return mark{line: loc.Start.Line, from: from, to: max(to, from), primary: primary, msg: msg}
}

// shownLines lists the lines to print in ascending order: every marked line
// plus context lines around the primary one.
func shownLines(f *source.File, primary uint32, marks []mark, context int) []uint32 {
	if f == nil {
		return nil
	}
	ctx, err := safecast.Conv[uint32](context)
	if err != nil {
		ctx = 0
	}
	last := f.LineCount()
	set := make(map[uint32]struct{}, len(marks)+2*int(ctx))
	for _, m := range marks {
		set[m.line] = struct{}{}
	}
	lo := uint32(1)
	if primary > ctx {
		lo = primary - ctx
	}
	for ln := lo; ln <= min(primary+ctx, last); ln++ {
		set[ln] = struct{}{}
	}
	out := make([]uint32, 0, len(set))
	for ln := range set {
		out = append(out, ln)
	}
	slices.Sort(out)
	return out
}

func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
