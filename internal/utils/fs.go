package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// StdinPath is the file name that stands for standard input.
const StdinPath = "-"

// DirStatus reports whether a directory is usable for config files.
type DirStatus struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates dirPath and its parents.
func EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dirPath, err)
	}
	return nil
}

// SaveTOMLFile encodes data and writes it to filePath. Nothing is written
// when encoding fails.
func SaveTOMLFile(data any, filePath string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("encode %s: %w", filePath, err)
	}
	if err := os.WriteFile(filePath, buf.Bytes(), 0o644); err != nil {
		log.Errorf("Failed to write %s: %v", filePath, err)
		return err
	}
	return nil
}

// ReadText returns the content of path, or of stdin when path is empty or "-".
func ReadText(path string, stdin io.Reader) (string, error) {
	if path == "" || path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	log.Debugf("Read %s bytes from %s", FormatWithCommas(len(data)), path)
	return string(data), nil
}

// GetAbsolutePath resolves path against the working directory, returning it
// unchanged when that fails.
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func writable(dirPath string) bool {
	probe, err := os.CreateTemp(dirPath, ".wordgram-*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}

// GetExecutableDir returns the directory of the running binary with symlinks
// resolved.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus creates dirPath when missing and probes it for writes.
func CheckDirStatus(dirPath string) DirStatus {
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return DirStatus{Error: err}
	}
	return DirStatus{Exists: true, Writable: writable(dirPath)}
}
