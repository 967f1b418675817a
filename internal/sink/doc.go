// Package sink provides the output variants a composition run can
// dispatch to: the console stream, a single output file, or an
// in-memory buffer. The variant is selected once at construction; the
// composer itself never branches on sink capability per line.
package sink
