package schemer

// Resolver produces the complete, deterministic composition order for a
// schema root: the root prologue path, each schema directory's expanded
// and deduplicated file list in root-ORDER order, then the root
// epilogue path.
type Resolver interface {
	// Resolve reads the ordering metadata beneath rootPath and returns
	// the full sequence of file paths to compose, with no path appearing
	// more than once. It fails when the root or a listed schema
	// directory lacks its ORDER file.
	Resolve(rootPath string) ([]string, error)
}

// Composer streams a resolved order through macro substitution to a
// sink. Each file is read line by line and every processed line is
// dispatched before the next is read, so partial output survives a
// mid-run failure.
type Composer interface {
	// Run processes every file in order. It fails when a file cannot be
	// opened or a line references a macro key that resolves nowhere.
	Run(order []string) error
}
