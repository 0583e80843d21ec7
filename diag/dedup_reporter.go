package diag

import "gqlfront/source"

// identity is what makes two diagnostics the same report. Labels, notes
// and fixes are not part of it.
type identity struct {
	code    Code
	sev     Severity
	primary source.Span
	msg     string
}

// DedupReporter forwards each distinct diagnostic to next once.
type DedupReporter struct {
	next       Reporter
	seen       map[identity]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[identity]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	id := identity{code: d.Code, sev: d.Severity, primary: d.Primary, msg: d.Message}
	if _, dup := r.seen[id]; dup {
		r.suppressed++
		return
	}
	r.seen[id] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}

// Suppressed returns how many duplicates were dropped.
func (r *DedupReporter) Suppressed() int { return r.suppressed }
