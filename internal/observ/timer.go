// Package observ times the phases of a command run.
package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase is one timed step, e.g. parsing a directory or rendering output.
type Phase struct {
	Name  string
	Dur   time.Duration
	Files int
}

// Timer collects phases in the order they finish. It is not safe for
// concurrent use.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer { return &Timer{now: time.Now} }

// Begin starts a phase. The returned function ends it and records how many
// files it covered.
func (t *Timer) Begin(name string) func(files int) {
	start := t.now()
	return func(files int) {
		t.phases = append(t.phases, Phase{Name: name, Dur: t.now().Sub(start), Files: files})
	}
}

// PhaseReport is the serialized form of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Files      int     `json:"files,omitempty"`
}

// Report aggregates the recorded phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	report := Report{Phases: make([]PhaseReport, 0, len(t.phases))}
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		report.Phases = append(report.Phases, PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Files:      p.Files,
		})
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// WriteSummary prints one line per phase followed by the total.
func (t *Timer) WriteSummary(w io.Writer) error {
	report := t.Report()
	if _, err := fmt.Fprintln(w, "timings:"); err != nil {
		return err
	}
	for _, p := range report.Phases {
		line := fmt.Sprintf("  %-12s %9.2f ms", p.Name, p.DurationMS)
		if p.Files > 0 {
			line += fmt.Sprintf("  (%d files)", p.Files)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-12s %9.2f ms\n", "total", report.TotalMS)
	return err
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
