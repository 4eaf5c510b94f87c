// Package ui provides the Bubbletea terminal user interface for speakez.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
)

// FileStatus represents the analysis state of a single file.
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusAnalyzing
	StatusComplete
	StatusError
)

// FileEntry tracks one audio file through the queue.
type FileEntry struct {
	InputPath string
	Status    FileStatus
	StartTime time.Time

	// Completion data
	Result       fluency.Result
	DurationSecs float64
	ReportPath   string
	Error        error
}

// Model is the Bubbletea model for the analysis UI.
type Model struct {
	Files          []FileEntry
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	StartTime time.Time
	Done      bool

	// Channel for receiving updates from the analysis goroutine.
	Updates chan tea.Msg

	Width  int
	Height int
}

// NewModel creates a UI model for the given input files.
func NewModel(inputFiles []string) Model {
	files := make([]FileEntry, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileEntry{InputPath: path, Status: StatusQueued}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1,
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
		Updates:      make(chan tea.Msg, 16),
	}
}

// Init starts listening for analysis updates.
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.Updates)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusAnalyzing
		m.Files[m.CurrentIndex].StartTime = time.Now()
		return m, waitForUpdate(m.Updates)

	case FileCompleteMsg:
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			entry := &m.Files[msg.FileIndex]
			entry.Result = msg.Result
			entry.DurationSecs = msg.DurationSecs
			entry.ReportPath = msg.ReportPath
			entry.Error = msg.Error

			if msg.Error != nil {
				entry.Status = StatusError
				m.FailedFiles++
			} else {
				entry.Status = StatusComplete
				m.CompletedFiles++
			}
		}
		return m, waitForUpdate(m.Updates)

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderQueueView(m)
}

// waitForUpdate creates a command that waits for the next analysis message.
func waitForUpdate(updates chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}
