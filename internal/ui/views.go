package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E6FB8"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	okIcon     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
	activeIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
	failIcon   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
	queueIcon  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")

	flaggedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))

	footerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1).
			Width(60)
)

// renderQueueView renders the main analysis view.
func renderQueueView(m Model) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("SpeakEz 🎤 - Speech Fluency Analyzer"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Analyzing %d file(s)", m.TotalFiles)))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerBox.Render(fmt.Sprintf("Analyzed %d of %d", m.CompletedFiles, m.TotalFiles)))
	return b.String()
}

// renderFileEntry renders one file line in the queue.
func renderFileEntry(file FileEntry) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		return fmt.Sprintf(" %s %s\n   %s", okIcon, fileName, renderScores(file.Result))

	case StatusAnalyzing:
		return fmt.Sprintf(" %s %s\n   Analyzing...", activeIcon, fileName)

	case StatusError:
		return fmt.Sprintf(" %s %s\n   Error: %v", failIcon, fileName, file.Error)

	default:
		return fmt.Sprintf(" %s %s\n   Queued...", queueIcon, fileName)
	}
}

// renderScores renders the one-line score summary for a completed file.
func renderScores(r fluency.Result) string {
	summary := fmt.Sprintf("Instability %s %.2f | Repetition %s %.2f | Pauses %d",
		renderScoreBar(r.Stuttering, 10), r.Stuttering,
		renderScoreBar(r.Repetition, 10), r.Repetition,
		r.Pauses)
	if r.IsDisorderPattern {
		summary += "  " + flaggedStyle.Render("⚑ flagged")
	}
	return summary
}

// renderScoreBar renders a fixed-width bar for a score in [0,1].
func renderScoreBar(score float64, width int) string {
	filled := int(score * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderCompletionSummary renders the final view once every file is done.
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Analysis Complete!"))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		switch file.Status {
		case StatusComplete:
			b.WriteString(fmt.Sprintf(" %s %s\n   %s\n   %s\n",
				okIcon, filepath.Base(file.InputPath),
				renderScores(file.Result),
				file.Result.Reassurance))
			if file.ReportPath != "" {
				b.WriteString(fmt.Sprintf("   Report: %s\n", file.ReportPath))
			}
		case StatusError:
			b.WriteString(fmt.Sprintf(" %s %s\n   Error: %v\n",
				failIcon, filepath.Base(file.InputPath), file.Error))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	if m.FailedFiles > 0 {
		b.WriteString(fmt.Sprintf("%d of %d file(s) analyzed, %d failed\n",
			m.CompletedFiles, m.TotalFiles, m.FailedFiles))
	} else {
		b.WriteString(fmt.Sprintf("All %d file(s) analyzed ✓\n", m.TotalFiles))
	}

	return b.String()
}
