package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colvin/schemer/pkg/schemer"
)

var rootCmd = &cobra.Command{
	Use:   "schemer",
	Short: "Assemble schema SQL fragments into a single stream",
	Long: `schemer composes a directory tree of SQL fragment files into one SQL
text stream. The schema root's ORDER file names the schema directories
to process, in order; each directory's ORDER file lists file patterns
(literal names or globs). PROLOGUE.sql and EPILOGUE.sql are forced to
the first and last positions wherever they exist, and the root-level
pair brackets the whole stream.

MACRO{key} references in fragment lines are substituted from macro
files, the -m JSON argument, and finally the process environment.

Output goes to stdout unless --output selects a file. Output is
written incrementally: a failure partway through leaves already-written
output in place.

Examples:
  # Compose ./schema to stdout
  schemer

  # Compose a tree into a file, with macros from two files
  schemer -p db/schema -o build/schema.sql -f base.macros -f prod.macros

  # Override a macro inline
  schemer -p db/schema -m '{"SCHEMA_OWNER": "app", "PORT": 5432}'

  # Rebuild whenever the tree changes
  schemer -p db/schema -o build/schema.sql --watch

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or malformed macro JSON
  11 - Missing ORDER file or composed file
  12 - Undefined macro`,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

type rootFlagValues struct {
	path       string
	output     string
	macroFiles []string
	macroJSON  string
	envFiles   []string
	watch      bool
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVarP(&rootFlags.path, "path", "p", schemer.DefaultSchemaPath,
		"Schema root directory containing the top-level ORDER file")
	rootCmd.Flags().StringVarP(&rootFlags.output, "output", "o", "",
		"Output file path; when given the composed stream is written to\n"+
			"this file instead of stdout")
	rootCmd.Flags().StringArrayVarP(&rootFlags.macroFiles, "macro-file", "f", nil,
		"Macro definition file to merge (repeatable)\n"+
			"Later files override earlier ones for the same key")
	rootCmd.Flags().StringVarP(&rootFlags.macroJSON, "macro", "m", "",
		"JSON object of macro definitions merged after all macro files\n"+
			"Example: -m '{\"SCHEMA_OWNER\": \"app\", \"PORT\": 5432}'")
	rootCmd.Flags().StringArrayVar(&rootFlags.envFiles, "env-file", nil,
		"Dotenv file loaded into the process environment before\n"+
			"composition (repeatable); the environment is the last-resort\n"+
			"macro provider")
	rootCmd.Flags().BoolVarP(&rootFlags.watch, "watch", "w", false,
		"Stay running and rebuild when the schema tree changes\n"+
			"Requires --output")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
