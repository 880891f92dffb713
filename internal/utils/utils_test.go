package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithCommas(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		12345:    "12,345",
		123456:   "123,456",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
		-12:      "-12",
	}
	for n, want := range tests {
		assert.Equal(t, want, FormatWithCommas(n), "n=%d", n)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "nation", Truncate("nation", 10))
	assert.Equal(t, "nat...", Truncate("nationalism", 6))
	assert.Equal(t, "na", Truncate("nation", 2))
	assert.Equal(t, "été", Truncate("été", 3))
	assert.Equal(t, "nation", Truncate("nation", 0))
}

func TestReadText(t *testing.T) {
	text, err := ReadText(StdinPath, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)

	text, err = ReadText("", strings.NewReader("empty path"))
	require.NoError(t, err)
	assert.Equal(t, "empty path", text)

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("the nation"), 0o644))
	text, err = ReadText(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "the nation", text)

	_, err = ReadText(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTOMLRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[analysis]\nngram_size = 3\nstrict_symbols = true\n\n[output]\nformat = \"json\"\n"), 0o644))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)

	section, ok := ExtractSection(data, "analysis")
	require.True(t, ok)
	size, ok := ExtractInt(section, "ngram_size")
	assert.True(t, ok)
	assert.Equal(t, 3, size)
	strict, ok := ExtractBool(section, "strict_symbols")
	assert.True(t, ok)
	assert.True(t, strict)

	_, ok = ExtractInt(section, "strict_symbols")
	assert.False(t, ok)

	output, _ := ExtractSection(data, "output")
	format, ok := ExtractString(output, "format")
	assert.True(t, ok)
	assert.Equal(t, "json", format)

	_, ok = ExtractSection(data, "missing")
	assert.False(t, ok)
}

func TestSaveTOMLFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	require.NoError(t, EnsureDir(dir))

	path := filepath.Join(dir, "out.toml")
	type section struct {
		Size int `toml:"size"`
	}
	require.NoError(t, SaveTOMLFile(struct {
		Tree section `toml:"tree"`
	}{section{Size: 4}}, path))
	assert.True(t, FileExists(path))

	var loaded struct {
		Tree section `toml:"tree"`
	}
	require.NoError(t, LoadTOMLFile(path, &loaded))
	assert.Equal(t, 4, loaded.Tree.Size)

	status := CheckDirStatus(dir)
	assert.True(t, status.Exists)
	assert.True(t, status.Writable)
}

func TestFileExistsIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.toml")))
}

func TestSaveTOMLFileKeepsNothingOnEncodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	err := SaveTOMLFile(map[string]any{"ch": make(chan int)}, path)
	assert.Error(t, err)
	assert.False(t, FileExists(path))
}
