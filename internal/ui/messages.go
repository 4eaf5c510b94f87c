package ui

import (
	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
)

// FileStartMsg indicates analysis has started for a file.
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg carries the outcome for one analyzed file.
type FileCompleteMsg struct {
	FileIndex    int
	Result       fluency.Result
	DurationSecs float64 // length of the analyzed audio
	ReportPath   string  // non-empty when a report file was written
	Error        error
}

// AllCompleteMsg indicates every queued file has been analyzed.
type AllCompleteMsg struct{}
