package argv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefaults(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("ARGV_TEST_COUNT", "7")

	p, _, _ := newTestParser()
	Check[int](p.AddKeyValueArgument("--count").FromEnv("ARGV_TEST_COUNT"))

	p.Parse([]string{"prog"})

	assert.True(t, p.WasFound("--count"))
	got, err := FrontAs[int](p, "--count")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestCommandLineBeatsEnv(t *testing.T) {
	t.Setenv("ARGV_TEST_COUNT", "7")

	p, _, _ := newTestParser()
	Check[int](p.AddKeyValueArgument("--count").FromEnv("ARGV_TEST_COUNT"))

	p.Parse([]string{"prog", "--count", "3"})

	assert.Equal(t, 3, FrontAsOr(p, "--count", -1))
}

func TestEnvListFillsMultiValue(t *testing.T) {
	t.Setenv("ARGV_TEST_TAGS", "a, b,c")

	p, _, _ := newTestParser()
	p.AddKeyValueArgument("--tags").SetMinMax(1, 3).FromEnv("ARGV_TEST_TAGS")

	p.Parse([]string{"prog"})

	got, err := AllAs[string](p, "--tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestTOMLDefaults(t *testing.T) {
	path := writeDefaults(t, "defaults.toml", "count = 7\ntags = [\"x\", \"y\"]\nsource = \"in.txt\"\n")

	p, _, _ := newTestParser()
	p.DefaultsFile(path)
	Check[int](p.AddKeyValueArgument("--count"))
	p.AddKeyValueArgument("--tags").SetMinMax(1, 3)
	p.AddPositionalArgument("source")

	p.Parse([]string{"prog"})

	assert.Equal(t, 7, FrontAsOr(p, "--count", -1))
	assert.Equal(t, []string{"x", "y"}, AllAsOr[string](p, "--tags", nil))
	assert.Equal(t, "in.txt", FrontAsOr(p, "source", ""))
	assert.False(t, p.HasErrors())
}

func TestYAMLDefaults(t *testing.T) {
	path := writeDefaults(t, "defaults.yaml", "count: 7\n")

	p, _, _ := newTestParser()
	p.DefaultsFile(path)
	Check[int](p.AddKeyValueArgument("--count"))

	p.Parse([]string{"prog"})

	assert.Equal(t, 7, FrontAsOr(p, "--count", -1))
}

func TestEnvBeatsDefaultsFile(t *testing.T) {
	t.Setenv("ARGV_TEST_COUNT", "9")
	path := writeDefaults(t, "defaults.toml", "count = 7\n")

	p, _, _ := newTestParser()
	p.DefaultsFile(path)
	Check[int](p.AddKeyValueArgument("--count").FromEnv("ARGV_TEST_COUNT"))

	p.Parse([]string{"prog"})

	assert.Equal(t, 9, FrontAsOr(p, "--count", -1))
}

func TestInjectedDefaultsAreValidated(t *testing.T) {
	path := writeDefaults(t, "defaults.toml", "count = \"abc\"\n")

	p, _, _ := newTestParser()
	p.DefaultsFile(path)
	Check[int](p.AddKeyValueArgument("--count"))

	p.Parse([]string{"prog"})

	assert.True(t, p.ArgHasErrors("--count"), "injected values run the validation pipeline")
}

func TestDefaultsFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p, _, _ := newTestParser()
		assert.Panics(t, func() { p.DefaultsFile("/nope/defaults.toml") })
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeDefaults(t, "defaults.toml", "count = [unclosed\n")
		p, _, _ := newTestParser()
		assert.Panics(t, func() { p.DefaultsFile(path) })
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeDefaults(t, "defaults.json", "{}")
		p, _, _ := newTestParser()
		assert.Panics(t, func() { p.DefaultsFile(path) })
	})
}
