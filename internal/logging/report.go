// Package logging generates fluency reports and console output for analyzed
// files.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
)

// ReportData collects everything the report writer needs about one analysis.
type ReportData struct {
	InputPath    string
	StartTime    time.Time
	EndTime      time.Time
	Result       fluency.Result
	SampleRate   int
	Channels     int
	DurationSecs float64
}

// GenerateReport writes a plain-text fluency report next to dir and returns
// the path of the written file. The file name derives from the input:
// sample.wav becomes sample-fluency.txt.
func GenerateReport(data ReportData, dir string) (string, error) {
	base := filepath.Base(data.InputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(dir, base+"-fluency.txt")

	var b strings.Builder
	writeReportHeader(&b, data)
	writeScoreSection(&b, data)
	writeAssessmentSection(&b, data)
	writeTipsSection(&b, data)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}

func writeReportHeader(b *strings.Builder, data ReportData) {
	fmt.Fprintln(b, strings.Repeat("=", 70))
	fmt.Fprintf(b, "FLUENCY REPORT: %s\n", filepath.Base(data.InputPath))
	fmt.Fprintln(b, strings.Repeat("=", 70))
	fmt.Fprintf(b, "Analyzed:    %s\n", data.EndTime.Format(time.RFC1123))
	fmt.Fprintf(b, "Duration:    %s\n", formatDurationHMS(data.DurationSecs))
	fmt.Fprintf(b, "Sample Rate: %d Hz\n", data.SampleRate)
	fmt.Fprintf(b, "Channels:    %s\n", channelName(data.Channels))
	fmt.Fprintln(b)
}

func writeScoreSection(b *strings.Builder, data ReportData) {
	writeSectionHeading(b, "SCORES")

	table := MetricTable{Rows: []MetricRow{
		{
			Label:          "Instability",
			Value:          fmt.Sprintf("%.2f", data.Result.Stuttering),
			Interpretation: interpretInstability(data.Result.Stuttering),
		},
		{
			Label:          "Repetition",
			Value:          fmt.Sprintf("%.2f", data.Result.Repetition),
			Interpretation: interpretRepetition(data.Result.Repetition),
		},
		{
			Label:          "Long pauses",
			Value:          fmt.Sprintf("%d", data.Result.Pauses),
			Interpretation: interpretPauses(data.Result.Pauses, data.DurationSecs),
		},
	}}
	fmt.Fprintln(b, table.String())
	fmt.Fprintln(b)
}

func writeAssessmentSection(b *strings.Builder, data ReportData) {
	writeSectionHeading(b, "ASSESSMENT")

	if data.Result.IsDisorderPattern {
		fmt.Fprintln(b, "  Speech-flow anomalies were detected in this sample.")
		fmt.Fprintln(b, "  This is a heuristic screen, not a diagnosis.")
	} else {
		fmt.Fprintln(b, "  No speech-flow anomalies were detected in this sample.")
	}
	fmt.Fprintf(b, "\n  %s\n\n", data.Result.Reassurance)
}

func writeTipsSection(b *strings.Builder, data ReportData) {
	tips := GenerateSpeakingTips(data.Result, data.DurationSecs)
	if len(tips) == 0 {
		return
	}

	writeSectionHeading(b, "SPEAKING TIPS")
	for _, tip := range tips {
		fmt.Fprintf(b, "  • %s\n", wrapText(tip.Message, 64, "    "))
	}
	fmt.Fprintln(b)
}

func writeSectionHeading(b *strings.Builder, title string) {
	fmt.Fprintln(b, title)
	fmt.Fprintln(b, strings.Repeat("-", len(title)))
}

// interpretInstability describes the instability score band. The 0.45 step
// matches the classifier's disorder threshold.
func interpretInstability(score float64) string {
	switch {
	case score <= 0.10:
		return "very steady delivery"
	case score <= 0.25:
		return "mostly steady"
	case score <= 0.45:
		return "noticeably uneven"
	case score <= 0.70:
		return "strongly uneven"
	default:
		return "highly volatile delivery"
	}
}

// interpretRepetition describes the repetition score band.
func interpretRepetition(score float64) string {
	switch {
	case score <= 0.10:
		return "no notable repetition"
	case score <= 0.45:
		return "some similar bursts"
	case score <= 0.75:
		return "frequent near-duplicate bursts"
	default:
		return "bursts repeat almost constantly"
	}
}

// interpretPauses describes the pause count relative to sample length.
func interpretPauses(count int, durationSecs float64) string {
	if count == 0 {
		return "no long pauses"
	}
	if durationSecs <= 0 {
		return "long pauses present"
	}

	perMinute := float64(count) / (durationSecs / 60.0)
	switch {
	case perMinute <= 4:
		return "a natural pause rate"
	case perMinute <= 10:
		return "frequent pausing"
	default:
		return "very frequent pausing"
	}
}

// formatDurationHMS renders seconds as m:ss or h:mm:ss.
func formatDurationHMS(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// channelName renders a channel count as prose.
func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
