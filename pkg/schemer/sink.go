package schemer

// Sink receives processed lines during a composition run. The variant
// (console, file, or in-memory buffer) is selected once at construction
// and does not change for the run's duration.
//
// Lines arrive without trailing newlines; the sink appends exactly one.
// Output is dispatched incrementally as files are processed, so a
// mid-run failure leaves everything already written in place. There is
// no rollback or transactional buffering.
type Sink interface {
	// Write dispatches one processed line to the sink's destination.
	Write(line string) error

	// Finish releases any resources held by the sink. It must be safe
	// to call more than once, and safe to call after a failed run.
	Finish() error
}
