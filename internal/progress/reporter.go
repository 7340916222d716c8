package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Reporter provides progress feedback while packages are rendered.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a LogReporter if the CI environment variable is set.
func NewReporter(log logrus.FieldLogger) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LogReporter{Log: log}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Rendering packages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LogReporter writes one log entry per step, suitable for CI logs.
type LogReporter struct {
	Log   logrus.FieldLogger
	total int
}

func (r *LogReporter) Start(total int) {
	r.total = total
	r.Log.WithField("packages", total).Info("rendering started")
}

func (r *LogReporter) Update(current int, message string) {
	r.Log.WithFields(logrus.Fields{"step": current, "total": r.total}).Info(message)
}

func (r *LogReporter) Finish() {
	r.Log.Info("rendering complete")
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
