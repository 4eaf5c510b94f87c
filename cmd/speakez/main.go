package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/samyak-jain-12/speakez-hackathon/internal/audio"
	"github.com/samyak-jain-12/speakez-hackathon/internal/cli"
	"github.com/samyak-jain-12/speakez-hackathon/internal/config"
	"github.com/samyak-jain-12/speakez-hackathon/internal/fluency"
	"github.com/samyak-jain-12/speakez-hackathon/internal/logging"
	"github.com/samyak-jain-12/speakez-hackathon/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version bool     `short:"v" help:"Show version information"`
	Config  string   `short:"c" type:"path" help:"Path to YAML config file (optional)"`
	Logs    bool     `help:"Save a fluency report per file"`
	Plain   bool     `help:"Print results to stdout instead of the TUI"`
	Verbose bool     `help:"Enable debug logging"`
	Files   []string `arg:"" name:"files" help:"WAV files to analyze" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("speakez"),
		kong.Description("Speech fluency analyzer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	cfg, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	if cliArgs.Logs {
		cfg.Reports.Enabled = true
	}

	log := newLogger(cfg, cliArgs)

	if cliArgs.Plain {
		runPlain(cliArgs.Files, cfg, log)
		return
	}
	runTUI(cliArgs.Files, cfg, log)
}

// newLogger builds the logrus logger. In TUI mode diagnostics go to a file
// (or nowhere) so they cannot corrupt the terminal output.
func newLogger(cfg *config.Config, cliArgs *CLI) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	if cliArgs.Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	switch {
	case cfg.Logging.File != "":
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			cli.PrintError(fmt.Sprintf("cannot open log file: %v", err))
			os.Exit(1)
		}
		log.SetOutput(f)
	case !cliArgs.Plain:
		if cliArgs.Verbose {
			f, _ := os.Create("speakez-debug.log")
			if f != nil {
				log.SetOutput(f)
				break
			}
		}
		log.SetOutput(io.Discard)
	}

	return log
}

// fileOutcome is the result of analyzing one file.
type fileOutcome struct {
	clip       *audio.Clip
	result     fluency.Result
	reportPath string
}

// analyzeFile decodes one WAV file, runs the fluency pipeline, and writes a
// report when configured.
func analyzeFile(path string, cfg *config.Config, log *logrus.Logger) (*fileOutcome, error) {
	start := time.Now()

	clip, err := audio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"file":     path,
		"rate":     clip.SampleRate,
		"channels": clip.Channels,
		"duration": clip.Duration,
	}).Debug("decoded audio")

	if limit := cfg.Limits.MaxDurationSecs; limit > 0 && clip.Duration > limit {
		return nil, fmt.Errorf("%s is %.0fs long, over the %.0fs limit", path, clip.Duration, limit)
	}

	analyzer := fluency.NewAnalyzer(clip.SampleRate)
	result := analyzer.Analyze(clip.Samples, nil)
	log.WithFields(logrus.Fields{
		"file":        path,
		"instability": result.Stuttering,
		"repetition":  result.Repetition,
		"pauses":      result.Pauses,
		"flagged":     result.IsDisorderPattern,
	}).Debug("analysis complete")

	outcome := &fileOutcome{clip: clip, result: result}
	if cfg.Reports.Enabled {
		reportPath, err := logging.GenerateReport(logging.ReportData{
			InputPath:    path,
			StartTime:    start,
			EndTime:      time.Now(),
			Result:       result,
			SampleRate:   clip.SampleRate,
			Channels:     clip.Channels,
			DurationSecs: clip.Duration,
		}, cfg.Reports.Dir)
		if err != nil {
			log.WithError(err).Warn("failed to write report")
		} else {
			outcome.reportPath = reportPath
		}
	}

	return outcome, nil
}

// runPlain analyzes each file and prints results straight to stdout.
func runPlain(files []string, cfg *config.Config, log *logrus.Logger) {
	failed := 0
	for _, path := range files {
		outcome, err := analyzeFile(path, cfg, log)
		if err != nil {
			cli.PrintError(err.Error())
			failed++
			continue
		}
		logging.DisplayResult(os.Stdout, path, outcome.clip, outcome.result)
		if outcome.reportPath != "" {
			fmt.Printf("Report written to %s\n", outcome.reportPath)
		}
		fmt.Println()
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// runTUI runs the Bubbletea interface while analyzing in the background.
func runTUI(files []string, cfg *config.Config, log *logrus.Logger) {
	model := ui.NewModel(files)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for i, path := range files {
			model.Updates <- ui.FileStartMsg{FileIndex: i, FileName: path}

			outcome, err := analyzeFile(path, cfg, log)
			if err != nil {
				model.Updates <- ui.FileCompleteMsg{FileIndex: i, Error: err}
				continue
			}
			model.Updates <- ui.FileCompleteMsg{
				FileIndex:    i,
				Result:       outcome.result,
				DurationSecs: outcome.clip.Duration,
				ReportPath:   outcome.reportPath,
			}
		}
		model.Updates <- ui.AllCompleteMsg{}
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}
