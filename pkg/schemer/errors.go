package schemer

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := composer.Run(order)
//	if errors.Is(err, schemer.ErrUndefinedMacro) {
//	    // Handle a macro key missing from mapping and environment
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingOrderFile indicates a required ORDER file could not be read.
	// Covers both the schema root and any schema directory it lists; a
	// directory named in the root ORDER that does not exist surfaces here
	// when its ORDER file is opened.
	ErrMissingOrderFile = errors.New("ORDER file not found")

	// ErrFileNotFound indicates a file in the resolved order could not be
	// opened for composition. Root-level prologue and epilogue paths are
	// inserted without an existence check, so their absence surfaces here.
	ErrFileNotFound = errors.New("file not found")

	// ErrUndefinedMacro indicates a MACRO{key} reference resolved to
	// neither a mapping entry nor an environment variable.
	ErrUndefinedMacro = errors.New("undefined macro")

	// ErrMalformedMacroJSON indicates the inline macro JSON argument
	// failed to parse or contained non-scalar values.
	ErrMalformedMacroJSON = errors.New("malformed macro JSON")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMalformedMacroJSON):
		return ExitConfigError
	case errors.Is(err, ErrMissingOrderFile):
		return ExitMissingFile
	case errors.Is(err, ErrFileNotFound):
		return ExitMissingFile
	case errors.Is(err, ErrUndefinedMacro):
		return ExitUndefinedMacro
	}

	return ExitGeneralError
}
