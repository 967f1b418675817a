// Package compose implements the second pass of the pipeline: reading
// the resolved file order line by line, substituting MACRO{key}
// references, and dispatching each processed line to the configured
// sink. A single linear pass owns the sink for the run's duration;
// failures abort mid-stream and leave partial output in place.
package compose
