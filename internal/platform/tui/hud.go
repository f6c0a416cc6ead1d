package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/intro"
	"github.com/vovakirdan/cleancity/internal/session"
)

// Banner and notice texts.
const (
	winTitle       = "STREET CLEAN!"
	winHint        = "Press N for the next street"
	runOverTitle   = "RUN OVER BY THE TRUCK"
	truckGoneTitle = "THE TRUCK IS GONE"
	loseHint       = "Press R to restart"
	cleanFirstText = "Clean this street first!"
	completedText  = "All streets completed! Back to the first one."
)

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// hudLines is the number of terminal rows above the playfield.
const hudLines = 2

// formatTime rounds the remaining time to whole seconds.
func formatTime(seconds float64) string {
	return strconv.Itoa(int(math.Round(math.Max(seconds, 0))))
}

// renderHUD returns the status line and the notice line.
func renderHUD(snap session.Snapshot) string {
	field := func(label, value string) string {
		return hudStyle.Render(label+": ") + hudValueStyle.Render(value)
	}

	status := strings.Join([]string{
		field("Street", fmt.Sprintf("%d/%d %s", snap.LevelIndex+1, snap.LevelCount, snap.LevelName)),
		field("Score", strconv.Itoa(snap.Score)),
		field("Carrying", strconv.Itoa(snap.CarriedTrash)),
		field("Left", strconv.Itoa(len(snap.Trash))),
		field("Time", formatTime(snap.TimeLeft)),
	}, "   ")

	var notices []string
	if snap.CleanStreetFirst.Visible {
		notices = append(notices, cleanFirstText)
	}
	if snap.AllLevelsCompleted.Visible {
		notices = append(notices, completedText)
	}

	return status + "\n" + noticeStyle.Render(strings.Join(notices, "  "))
}

// bannerFor returns the end-of-level banner, if any.
func bannerFor(snap session.Snapshot) ([]string, core.Color, bool) {
	switch {
	case !snap.GameOver:
		return nil, core.ColorDefault, false
	case snap.GameWon:
		return []string{winTitle, fmt.Sprintf("Score: %d", snap.Score), winHint}, core.ColorBrightGreen, true
	case snap.Player.Defeated:
		return []string{runOverTitle, loseHint}, core.ColorBrightRed, true
	default:
		return []string{truckGoneTitle, loseHint}, core.ColorBrightRed, true
	}
}

// fadeColor maps an opacity in [0, 1] onto the 256-color gray ramp.
func fadeColor(alpha float64) lipgloss.Color {
	const first, last = 232, 255
	step := int(math.Round(core.ClampF(alpha, 0, 1) * (last - first)))
	return lipgloss.Color(strconv.Itoa(first + step))
}

// renderIntro draws the current slide centered in the terminal.
func renderIntro(show *intro.Slideshow, width, height int) string {
	slide, ok := show.Current()
	if !ok {
		return ""
	}

	color := fadeColor(show.Alpha())
	title := lipgloss.NewStyle().Bold(true).Foreground(color).MarginBottom(1).Render(slide.Title)
	body := lipgloss.NewStyle().Foreground(color).Render(strings.Join(slide.Lines, "\n"))
	hint := helpStyle.Render(fmt.Sprintf("%d/%d  enter to skip", show.Index()+1, show.Len()))

	content := lipgloss.JoinVertical(lipgloss.Center, title, body, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
