package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/colvin/schemer/internal/compose"
	"github.com/colvin/schemer/internal/config"
	"github.com/colvin/schemer/internal/files/filesystem"
	"github.com/colvin/schemer/internal/logging"
	"github.com/colvin/schemer/internal/macro"
	"github.com/colvin/schemer/internal/order"
	"github.com/colvin/schemer/internal/sink"
	"github.com/colvin/schemer/pkg/schemer"
)

// buildOptions is the fully merged input set for one build: CLI flags
// layered over the schema root's optional schemer.yaml.
type buildOptions struct {
	path         string
	output       string
	macroFiles   []string
	configMacros map[string]string
	macroJSON    string
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	if len(rootFlags.envFiles) > 0 {
		if err := godotenv.Load(rootFlags.envFiles...); err != nil {
			return fmt.Errorf("%w: loading env files: %v", schemer.ErrInvalidConfig, err)
		}
		logger.Verbose("loaded %d env files", len(rootFlags.envFiles))
	}

	opts, err := mergeOptions(rootFlags, logger)
	if err != nil {
		return err
	}

	if rootFlags.watch {
		if opts.output == "" {
			return fmt.Errorf("%w: --watch requires --output", schemer.ErrInvalidConfig)
		}
		return runWatch(opts, logger)
	}

	return runBuild(opts, logger)
}

// mergeOptions layers flags over the optional project config. Config
// macro files come before flag macro files so explicit flags win the
// key merge; the config's inline macros sit between macro files and
// the -m JSON argument.
func mergeOptions(flags rootFlagValues, logger schemer.Logger) (*buildOptions, error) {
	opts := &buildOptions{
		path:      flags.path,
		output:    flags.output,
		macroJSON: flags.macroJSON,
	}

	cfg, err := config.Load(flags.path)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s: %v", schemer.ErrInvalidConfig, config.ConfigFileName, err)
		}
		opts.macroFiles = flags.macroFiles
		return opts, nil
	}

	logger.Verbose("loaded %s from %s", config.ConfigFileName, flags.path)

	if opts.output == "" {
		opts.output = cfg.Output
	}
	opts.macroFiles = append(append([]string{}, cfg.MacroFiles...), flags.macroFiles...)
	opts.configMacros = cfg.Macros
	return opts, nil
}

// runBuild executes one full composition pass.
func runBuild(opts *buildOptions, logger schemer.Logger) error {
	fsProvider := filesystem.NewOSFileSystem()

	mapping, err := buildMapping(fsProvider, opts, logger)
	if err != nil {
		return err
	}

	resolved, err := order.NewResolver(fsProvider, logger).Resolve(opts.path)
	if err != nil {
		return err
	}
	logger.Verbose("resolved %d files under %s", len(resolved), opts.path)

	outSink, err := newSink(opts.output)
	if err != nil {
		return err
	}
	// Finish is idempotent; the deferred call releases the file handle
	// when the run fails partway.
	defer outSink.Finish()

	if err := compose.New(fsProvider, mapping, outSink, logger).Run(resolved); err != nil {
		return err
	}
	return outSink.Finish()
}

// buildMapping merges macro sources in increasing precedence: macro
// files in supplied order, config inline macros, then the -m JSON.
func buildMapping(fsProvider filesystem.FileSystem, opts *buildOptions, logger schemer.Logger) (*macro.Mapping, error) {
	builder := macro.NewBuilder(logger)

	for _, name := range opts.macroFiles {
		content, err := fsProvider.ReadFile(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("macro file %s: %w", name, schemer.ErrFileNotFound)
			}
			return nil, fmt.Errorf("failed to read macro file %s: %w", name, err)
		}
		builder.MergeFile(name, content)
	}

	if len(opts.configMacros) > 0 {
		builder.Merge(opts.configMacros)
	}

	if opts.macroJSON != "" {
		values, err := macro.ParseJSON(opts.macroJSON)
		if err != nil {
			return nil, err
		}
		builder.Merge(values)
	}

	return builder.Build(), nil
}

// newSink selects the output variant: file when a path was given,
// console otherwise. Buffer mode is an embeddable surface only and has
// no flag.
func newSink(output string) (schemer.Sink, error) {
	if output == "" {
		return sink.NewConsole(), nil
	}
	return sink.NewFile(output)
}
