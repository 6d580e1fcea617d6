// Package render owns terminal presentation for the pattern runner.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/danmuck/patternctl/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	familyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// Renderer writes styled runner output. With color off it degrades to
// plain text.
type Renderer struct {
	out   io.Writer
	color bool
	width int
}

func New(out io.Writer, color bool, width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{out: out, color: color, width: width}
}

// PatternHeader prints the banner above one demo's output.
func (r *Renderer) PatternHeader(p catalog.Pattern) {
	title := fmt.Sprintf("%s (%s)", p.Name(), p.Family())
	rule := strings.Repeat("-", r.width)
	if r.color {
		title = headerStyle.Render(title)
		rule = ruleStyle.Render(rule)
	}
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, rule)
}

// FamilyHeading prints a family section heading for list output.
func (r *Renderer) FamilyHeading(f catalog.Family) {
	heading := string(f)
	if r.color {
		heading = familyStyle.Render(heading)
	}
	fmt.Fprintln(r.out, heading)
}

// ListRow prints one pattern line under its family heading.
func (r *Renderer) ListRow(p catalog.Pattern) {
	summary := p.Summary()
	if r.color {
		summary = summaryStyle.Render(summary)
	}
	fmt.Fprintf(r.out, "  %-18s %s\n", p.Name(), summary)
}

// Markdown renders a pattern write-up. Glamour is skipped when color is
// off so the raw Markdown stays greppable.
func (r *Renderer) Markdown(body string) error {
	if !r.color {
		_, err := fmt.Fprintln(r.out, body)
		return err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer init failed: %w", err)
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return fmt.Errorf("markdown render failed: %w", err)
	}
	_, err = fmt.Fprint(r.out, rendered)
	return err
}
