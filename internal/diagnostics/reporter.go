package diagnostics

import "github.com/entikit/entitygen/internal/models"

// Severity classifies a recorded diagnostic.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityError
)

// Record is one captured diagnostic.
type Record struct {
	Severity Severity
	Message  string
	Ref      models.ElementRef
}

// ConsoleReporter forwards driver diagnostics to the console system.
// It never fails.
type ConsoleReporter struct {
	system *System
}

// NewConsoleReporter creates a reporter that writes through the given
// diagnostic system.
func NewConsoleReporter(system *System) *ConsoleReporter {
	return &ConsoleReporter{system: system}
}

// Note records an informational diagnostic.
func (r *ConsoleReporter) Note(message string, ref models.ElementRef) {
	if ref.IsEmpty() {
		r.system.Info("%s", message)
		return
	}
	r.system.Info("%s: %s", ref, message)
}

// Error records an error diagnostic.
func (r *ConsoleReporter) Error(message string, ref models.ElementRef) {
	if ref.IsEmpty() {
		r.system.Error("%s", message)
		return
	}
	r.system.Error("%s: %s", ref, message)
}

// RecordingReporter captures diagnostics in memory. Tests assert on it, and
// the CLI uses it alongside the console to build summaries.
type RecordingReporter struct {
	Records []Record
}

// NewRecordingReporter creates an empty recording reporter.
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

// Note records an informational diagnostic.
func (r *RecordingReporter) Note(message string, ref models.ElementRef) {
	r.Records = append(r.Records, Record{Severity: SeverityNote, Message: message, Ref: ref})
}

// Error records an error diagnostic.
func (r *RecordingReporter) Error(message string, ref models.ElementRef) {
	r.Records = append(r.Records, Record{Severity: SeverityError, Message: message, Ref: ref})
}

// Notes returns the recorded NOTE messages in order.
func (r *RecordingReporter) Notes() []string {
	return r.messages(SeverityNote)
}

// Errors returns the recorded ERROR messages in order.
func (r *RecordingReporter) Errors() []string {
	return r.messages(SeverityError)
}

func (r *RecordingReporter) messages(severity Severity) []string {
	var out []string
	for _, record := range r.Records {
		if record.Severity == severity {
			out = append(out, record.Message)
		}
	}
	return out
}

// TeeReporter fans diagnostics out to multiple reporters.
type TeeReporter struct {
	reporters []Reporter
}

// Reporter is the diagnostic surface the emission driver reports on.
// Implementations never fail.
type Reporter interface {
	Note(message string, ref models.ElementRef)
	Error(message string, ref models.ElementRef)
}

// NewTeeReporter combines reporters into one.
func NewTeeReporter(reporters ...Reporter) *TeeReporter {
	return &TeeReporter{reporters: reporters}
}

// Note forwards to every reporter.
func (r *TeeReporter) Note(message string, ref models.ElementRef) {
	for _, reporter := range r.reporters {
		reporter.Note(message, ref)
	}
}

// Error forwards to every reporter.
func (r *TeeReporter) Error(message string, ref models.ElementRef) {
	for _, reporter := range r.reporters {
		reporter.Error(message, ref)
	}
}
