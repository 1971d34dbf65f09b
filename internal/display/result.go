package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultKind selects the colour and marker of a result box.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultFailure
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

var (
	SuccessColor = lipgloss.Color("#04B575")
	ErrorColor   = lipgloss.Color("#FF4672")

	resultKeyStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	resultValueStyle = lipgloss.NewStyle().Foreground(TextColor)
	tipStyle         = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
)

// Field is one key/value line of a result box. Order is kept.
type Field struct {
	Key   string
	Value string
}

// Result is the summary box printed by one-shot commands.
type Result struct {
	Kind   ResultKind
	Title  string
	Fields []Field
	Err    error
	Tips   []string
}

// Success builds a success result.
func Success(title string, fields ...Field) *Result {
	return &Result{Kind: ResultSuccess, Title: title, Fields: fields}
}

// Failure builds a failure result with troubleshooting tips.
func Failure(title string, err error, tips ...string) *Result {
	return &Result{Kind: ResultFailure, Title: title, Err: err, Tips: tips}
}

func (r *Result) lines() (string, []string) {
	heading := fmt.Sprintf("%s  %s", SuccessMarker, r.Title)
	if r.Kind == ResultFailure {
		heading = fmt.Sprintf("%s  %s", FailureMarker, r.Title)
	}

	var body []string
	for _, f := range r.Fields {
		body = append(body, resultKeyStyle.Render(f.Key+":")+" "+resultValueStyle.Render(f.Value))
	}
	if r.Err != nil {
		body = append(body, "Error: "+r.Err.Error())
	}
	if len(r.Tips) > 0 {
		body = append(body, "")
		for _, tip := range r.Tips {
			body = append(body, tipStyle.Render("• "+tip))
		}
	}
	return heading, body
}

// Render returns the boxed result, at least width columns wide when width
// is positive.
func (r *Result) Render(width int) string {
	heading, body := r.lines()

	color := SuccessColor
	if r.Kind == ResultFailure {
		color = ErrorColor
	}

	content := lipgloss.NewStyle().Foreground(color).Bold(true).Render(heading)
	if len(body) > 0 {
		content += "\n\n" + strings.Join(body, "\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(content)
}

// Plain returns the result as unstyled lines for pipes and logs.
func (r *Result) Plain() string {
	heading, _ := r.lines()

	var b strings.Builder
	b.WriteString(heading)
	for _, f := range r.Fields {
		fmt.Fprintf(&b, "\n  %s: %s", f.Key, f.Value)
	}
	if r.Err != nil {
		fmt.Fprintf(&b, "\n  Error: %v", r.Err)
	}
	for _, tip := range r.Tips {
		fmt.Fprintf(&b, "\n  - %s", tip)
	}
	return b.String()
}

// Print renders the result for the current stdout: boxed on a terminal,
// plain otherwise.
func (r *Result) Print() {
	if !IsTerminal() {
		fmt.Println(r.Plain())
		return
	}
	width, _ := GetTerminalSize()
	if width > 72 {
		width = 72
	}
	fmt.Println(r.Render(width))
}
