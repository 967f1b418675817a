package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colvin/schemer/internal/files/filesystem"
	"github.com/colvin/schemer/internal/logging"
	"github.com/colvin/schemer/internal/sink"
	"github.com/colvin/schemer/pkg/schemer"
)

// writeTree lays a small schema tree on disk for end-to-end runs.
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	write("ORDER", "one\ntwo\n")
	write("PROLOGUE.sql", "-- begin MACRO{SCHEMA_OWNER}\n")
	write("EPILOGUE.sql", "-- end\n")
	write("one/ORDER", "*.sql\n")
	write("one/A.sql", "create table MACRO{SCHEMA_OWNER}.a ();\n")
	write("one/B.sql", "create table MACRO{SCHEMA_OWNER}.b ();\n")
	write("two/ORDER", "Z.sql\n")
	write("two/Z.sql", "select 'MACRO{SCHEMA_OWNER}';\n")

	return root
}

func TestRunBuild_FileSink(t *testing.T) {
	root := writeTree(t)
	output := filepath.Join(t.TempDir(), "schema.sql")

	opts := &buildOptions{
		path:      root,
		output:    output,
		macroJSON: `{"SCHEMA_OWNER": "app"}`,
	}
	require.NoError(t, runBuild(opts, logging.NewNullLogger()))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	expected := "-- begin app\n" +
		"create table app.a ();\n" +
		"create table app.b ();\n" +
		"select 'app';\n" +
		"-- end\n"
	assert.Equal(t, expected, string(content))
}

func TestRunBuild_PartialOutputOnUndefinedMacro(t *testing.T) {
	root := writeTree(t)
	// B.sql references a key that resolves nowhere; A.sql has already
	// been dispatched by then and must remain in the output file.
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "one", "B.sql"),
		[]byte("select MACRO{MISSING};\n"), 0644))

	output := filepath.Join(t.TempDir(), "schema.sql")
	opts := &buildOptions{
		path:      root,
		output:    output,
		macroJSON: `{"SCHEMA_OWNER": "app"}`,
	}

	err := runBuild(opts, logging.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemer.ErrUndefinedMacro))

	content, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, "-- begin app\ncreate table app.a ();\n", string(content))
}

func TestRunBuild_EnvFallback(t *testing.T) {
	root := writeTree(t)
	t.Setenv("SCHEMA_OWNER", "envowner")

	output := filepath.Join(t.TempDir(), "schema.sql")
	opts := &buildOptions{path: root, output: output}
	require.NoError(t, runBuild(opts, logging.NewNullLogger()))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "create table envowner.a ();")
}

func TestRunBuild_MissingRootPrologue(t *testing.T) {
	root := writeTree(t)
	require.NoError(t, os.Remove(filepath.Join(root, "PROLOGUE.sql")))

	opts := &buildOptions{
		path:      root,
		output:    filepath.Join(t.TempDir(), "schema.sql"),
		macroJSON: `{"SCHEMA_OWNER": "app"}`,
	}

	err := runBuild(opts, logging.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemer.ErrFileNotFound))
}

func TestMergeOptions_NoConfigFile(t *testing.T) {
	root := t.TempDir()
	flags := rootFlagValues{
		path:       root,
		output:     "out.sql",
		macroFiles: []string{"a.macros"},
	}

	opts, err := mergeOptions(flags, logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, "out.sql", opts.output)
	assert.Equal(t, []string{"a.macros"}, opts.macroFiles)
	assert.Empty(t, opts.configMacros)
}

func TestMergeOptions_ConfigLayering(t *testing.T) {
	root := t.TempDir()
	cfg := "output: from-config.sql\nmacro_files:\n  - base.macros\nmacros:\n  FOO: bar\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "schemer.yaml"), []byte(cfg), 0644))

	// No explicit output flag: the config's output applies. Config macro
	// files precede flag macro files so flags win the key merge.
	flags := rootFlagValues{path: root, macroFiles: []string{"cli.macros"}}
	opts, err := mergeOptions(flags, logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, "from-config.sql", opts.output)
	assert.Equal(t, []string{"base.macros", "cli.macros"}, opts.macroFiles)
	assert.Equal(t, map[string]string{"FOO": "bar"}, opts.configMacros)

	// An explicit flag overrides the config output.
	flags.output = "explicit.sql"
	opts, err = mergeOptions(flags, logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, "explicit.sql", opts.output)
}

func TestMergeOptions_InvalidConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "schemer.yaml"), []byte("output: [broken"), 0644))

	_, err := mergeOptions(rootFlagValues{path: root}, logging.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemer.ErrInvalidConfig))
}

func TestBuildMapping_Precedence(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/work")
	fs.AddFile("first.macros", "FOO = from-first\nBAR = kept\n")
	fs.AddFile("second.macros", "FOO = from-second\n")

	opts := &buildOptions{
		macroFiles:   []string{"/work/first.macros", "/work/second.macros"},
		configMacros: map[string]string{"FOO": "from-config"},
		macroJSON:    `{"FOO": "from-json"}`,
	}

	mapping, err := buildMapping(fs, opts, logging.NewNullLogger())
	require.NoError(t, err)

	v, ok := mapping.Value("FOO")
	require.True(t, ok)
	assert.Equal(t, "from-json", v)

	v, ok = mapping.Value("BAR")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}

func TestBuildMapping_MissingMacroFile(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/work")

	opts := &buildOptions{macroFiles: []string{"/work/absent.macros"}}
	_, err := buildMapping(fs, opts, logging.NewNullLogger())

	require.Error(t, err)
	assert.True(t, errors.Is(err, schemer.ErrFileNotFound))
	assert.Contains(t, err.Error(), "absent.macros")
}

func TestBuildMapping_MalformedJSON(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/work")

	opts := &buildOptions{macroJSON: `{"FOO": }`}
	_, err := buildMapping(fs, opts, logging.NewNullLogger())

	require.Error(t, err)
	assert.True(t, errors.Is(err, schemer.ErrMalformedMacroJSON))
}

func TestNewSink_Selection(t *testing.T) {
	s, err := newSink("")
	require.NoError(t, err)
	assert.IsType(t, &sink.Console{}, s)

	path := filepath.Join(t.TempDir(), "out.sql")
	s, err = newSink(path)
	require.NoError(t, err)
	assert.IsType(t, &sink.File{}, s)
	require.NoError(t, s.Finish())
}
