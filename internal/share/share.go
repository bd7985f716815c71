// Package share models the boundary to the external share/print facility.
// The facility itself (device share sheet, mail hand-off) is outside this
// service; the pipeline only needs the two ports below.
package share

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileHandle identifies a printed file to the share facility.
type FileHandle struct {
	Name string
	Path string
}

// Printer turns rendered export content into a file the share facility can
// pick up.
type Printer interface {
	PrintToFile(name string, content []byte) (FileHandle, error)
}

// Sharer is the generic share call. Available is the probe the orchestrator
// checks before committing to the file path; ShareText is the lightweight
// channel that the fallback chain uses.
type Sharer interface {
	Available() bool
	ShareFile(handle FileHandle, contentType, title string) error
	ShareText(text, title string) error
}

// FilePrinter writes exports under a spool directory.
type FilePrinter struct {
	dir string
}

func NewFilePrinter(dir string) *FilePrinter {
	return &FilePrinter{dir: dir}
}

func (p *FilePrinter) PrintToFile(name string, content []byte) (FileHandle, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return FileHandle{}, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return FileHandle{}, fmt.Errorf("write export file: %w", err)
	}
	return FileHandle{Name: name, Path: path}, nil
}

// LogSharer stands in for the downstream share facility: it acknowledges
// every hand-off and records it. Always available.
type LogSharer struct {
	log zerolog.Logger
}

func NewLogSharer(log zerolog.Logger) *LogSharer {
	return &LogSharer{log: log}
}

func (s *LogSharer) Available() bool { return true }

func (s *LogSharer) ShareFile(handle FileHandle, contentType, title string) error {
	s.log.Info().
		Str("file", handle.Path).
		Str("content_type", contentType).
		Str("title", title).
		Msg("export handed to share facility")
	return nil
}

func (s *LogSharer) ShareText(text, title string) error {
	s.log.Info().
		Int("bytes", len(text)).
		Str("title", title).
		Msg("text export handed to share facility")
	return nil
}
