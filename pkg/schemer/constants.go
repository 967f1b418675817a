package schemer

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Composition completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or malformed macro JSON
	ExitMissingFile    = 11 // An ORDER file or composed file could not be opened
	ExitUndefinedMacro = 12 // A macro key was absent from both mapping and environment
)

const (
	// OrderFileName is the fixed, case-sensitive name of the ordering
	// metadata file expected at the schema root and in every schema
	// directory it lists.
	OrderFileName = "ORDER"

	// PrologueFileName is forced to the first position of a directory's
	// file list when present. The root-level prologue is inserted
	// unconditionally, without an existence check.
	PrologueFileName = "PROLOGUE.sql"

	// EpilogueFileName is forced to the last position of a directory's
	// file list when present. The root-level epilogue is appended
	// unconditionally, without an existence check.
	EpilogueFileName = "EPILOGUE.sql"

	// DefaultSchemaPath is the schema root used when no --path flag is given.
	DefaultSchemaPath = "./schema"
)
