// Package logging provides concrete implementations of the schemer.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics go to stderr so they never interleave with composed SQL
// on stdout when the console sink is active.
package logging
