package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/muurk/fuzzyplus/internal/clock"
	"github.com/muurk/fuzzyplus/internal/display"
	"github.com/muurk/fuzzyplus/internal/face"
	"github.com/muurk/fuzzyplus/internal/fuzzy"
)

// showCmd renders a single frame and exits
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the face for a time",
	Long: `Print one frame of the face, as it would look at the given time.

Without --at the current time is used. Output is styled when stdout is a
terminal and plain text otherwise.`,
	Example: `  # The face right now
  fuzzyplus show

  # The face at 14:52 with the tap overlay
  fuzzyplus show --at 14:52 --detail

  # Plain text for scripts
  fuzzyplus show --at 09:07 --plain`,
	RunE: runShow,
}

// scheduleCmd prints the layout test schedule
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the layout test schedule",
	Long: `Print the minutes that 'run --testing' steps through, with the phrase
each one produces. The schedule covers every quarter and both sides of each
tolerance boundary.`,
	RunE: runSchedule,
}

func init() {
	showCmd.Flags().String("at", "", "Time to show as HH:MM (default: now)")
	showCmd.Flags().Bool("detail", false, "Show the tap overlay (date and exact time)")
	showCmd.Flags().Bool("plain", false, "Plain text output without styling")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scheduleCmd)
}

// parseAt parses HH:MM onto the date of now.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q (expected HH:MM)", value)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

func runShow(cmd *cobra.Command, args []string) error {
	at, err := parseAt(settings.GetString("at"), time.Now())
	if err != nil {
		return err
	}

	canvas := display.NewCanvas()
	controller, err := face.NewController(canvas, clock.NewFixed(at))
	if err != nil {
		return err
	}
	defer controller.Close()

	frame := controller.Start()
	if settings.GetBool("detail") {
		frame = controller.Tap()
	}

	phrase := fuzzy.BuildPhrase(at.Hour(), at.Minute()).Phrase()

	if settings.GetBool("plain") || !display.IsTerminal() {
		fmt.Println(canvas.PlainString())
		fmt.Println(phrase)
		return nil
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		display.RenderFace(canvas),
		display.StatusStyle.Render(phrase),
	)
	if frame.HasDetail() {
		block = lipgloss.JoinVertical(lipgloss.Center, block,
			display.StatusStyle.Render(at.Format("Mon 2 Jan 15:04")))
	}

	width, _ := display.GetTerminalSize()
	fmt.Println(display.Center(width, lipgloss.Height(block), block))
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	sched := face.DefaultSchedule()

	rows := make([][]string, 0, sched.Len())
	for i := 0; i < sched.Len(); i++ {
		hour, minute := sched.Next()
		layout := fuzzy.BuildPhrase(hour, minute)

		var slots []string
		for _, id := range layout.Filled() {
			slots = append(slots, id.String())
		}
		rows = append(rows, []string{
			fmt.Sprintf("%02d:%02d", hour, minute),
			layout.Phrase(),
			fmt.Sprint(slots),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(display.StatusStyle).
		Headers("TIME", "PHRASE", "SLOTS").
		Rows(rows...)

	fmt.Println(t.Render())
	return nil
}
