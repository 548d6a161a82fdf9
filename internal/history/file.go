package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Load replaces the list contents with one line per input line.
// Blank lines are skipped.
func (l *List) Load(r io.Reader) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}
	l.Replace(lines)
	return nil
}

// Save writes every line followed by a newline.
func (l *List) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range l.Lines() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile loads the history file at path. A missing file yields an empty
// history and no error.
func (l *List) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.Replace(nil)
			return nil
		}
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	if err := l.Load(f); err != nil {
		return fmt.Errorf("read history %s: %w", path, err)
	}
	return nil
}

// SaveFile writes the history to path atomically using a temp file and
// rename, creating the parent directory if needed.
func (l *List) SaveFile(path string) error {
	if path == "" {
		return ErrNoFile
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := path + ".tmp"
	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := l.Save(f); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write history: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
