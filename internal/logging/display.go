// Package logging generates fluency reports and console output for analyzed
// files. This file provides the console display for --plain mode.

package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samyak-jain-12/speakez-hackathon/internal/audio"
	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
)

// DisplayResult prints one analysis to the console without the TUI.
// Used by --plain mode for scripting and quick inspection.
func DisplayResult(w io.Writer, inputPath string, clip *audio.Clip, result fluency.Result) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "ANALYSIS: %s\n", filepath.Base(inputPath))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintf(w, "Duration:    %s\n", formatDurationHMS(clip.Duration))
	fmt.Fprintf(w, "Sample Rate: %d Hz\n", clip.SampleRate)
	fmt.Fprintf(w, "Channels:    %s\n", channelName(clip.Channels))
	fmt.Fprintln(w)

	table := MetricTable{Rows: []MetricRow{
		{Label: "Instability", Value: fmt.Sprintf("%.2f", result.Stuttering), Interpretation: interpretInstability(result.Stuttering)},
		{Label: "Repetition", Value: fmt.Sprintf("%.2f", result.Repetition), Interpretation: interpretRepetition(result.Repetition)},
		{Label: "Long pauses", Value: fmt.Sprintf("%d", result.Pauses), Interpretation: interpretPauses(result.Pauses, clip.Duration)},
	}}
	fmt.Fprintln(w, table.String())
	fmt.Fprintln(w)

	if result.IsDisorderPattern {
		fmt.Fprintln(w, "Pattern flag: anomalies detected (heuristic screen, not a diagnosis)")
	} else {
		fmt.Fprintln(w, "Pattern flag: clear")
	}
	fmt.Fprintf(w, "%s\n", result.Reassurance)
}
