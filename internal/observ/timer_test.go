package observ

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	timer.now = fakeClock(2 * time.Millisecond)

	endParse := timer.Begin("parse")
	endParse(3)
	endRender := timer.Begin("render")
	endRender(0)

	want := Report{
		TotalMS: 4,
		Phases: []PhaseReport{
			{Name: "parse", DurationMS: 2, Files: 3},
			{Name: "render", DurationMS: 2},
		},
	}
	if diff := cmp.Diff(want, timer.Report()); diff != "" {
		t.Fatalf("report (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := timer.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	wantText := "timings:\n" +
		"  parse             2.00 ms  (3 files)\n" +
		"  render            2.00 ms\n" +
		"  total             4.00 ms\n"
	if buf.String() != wantText {
		t.Fatalf("summary = %q, want %q", buf.String(), wantText)
	}
}

func TestEmptyTimer(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("report = %+v", report)
	}
}
