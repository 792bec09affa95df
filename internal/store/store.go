// Package store keeps scrapbooks as JSON files in a data directory.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/scrapkit/internal/export/htmlexport"
	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

const (
	FormatVersion = "1.0"
	AppType       = "vanilla_js_scrapbook"

	defaultHTMLName = "scrapbook_export.html"
)

// Entry describes one saved scrapbook file.
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
}

// Library manages the scrapbook files in one directory.
type Library struct {
	dir string
	now func() time.Time
	log *logger.Logger
}

// New creates a Library rooted at dir, creating the directory if needed.
func New(dir string, log *logger.Logger) (*Library, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, apperrors.NewValidationError("data_dir", "data directory is required", nil)
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.NewIOError("create directory", dir, err)
		}
		log.WithFields(map[string]any{"dir": dir}).Info("created data directory")
	}

	return &Library{dir: dir, now: time.Now, log: log}, nil
}

// Open returns a Library rooted at dir without touching the filesystem.
// Operations on a missing directory fail with the underlying IOError.
func Open(dir string, log *logger.Logger) (*Library, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, apperrors.NewValidationError("data_dir", "data directory is required", nil)
	}
	return &Library{dir: dir, now: time.Now, log: log}, nil
}

// Dir returns the library's data directory.
func (l *Library) Dir() string {
	return l.dir
}

// Save stamps save metadata onto sb and writes it atomically. An empty
// filename is derived from the current time.
func (l *Library) Save(sb *scrapbook.Scrapbook, filename string) (string, error) {
	if sb == nil {
		return "", apperrors.NewValidationError("scrapbook", "scrapbook is nil", nil)
	}

	now := l.now()
	if filename == "" {
		filename = fmt.Sprintf("scrapbook_%s.json", now.Format("20060102_150405"))
	}
	path := filepath.Join(l.dir, filename)

	sb.Metadata = &scrapbook.Metadata{
		SavedAt: scrapbook.Timestamp{Time: now},
		Version: FormatVersion,
		AppType: AppType,
	}

	data, err := scrapbook.Encode(sb)
	if err != nil {
		l.log.Failure(err, "error saving scrapbook")
		return "", apperrors.NewDecodeError(path, err)
	}

	if err := writeAtomic(path, data); err != nil {
		l.log.WithFields(map[string]any{"path": path}).Failure(err, "error saving scrapbook")
		return "", err
	}

	l.log.WithFields(map[string]any{"path": path}).Success("scrapbook saved")
	return path, nil
}

// Load reads a scrapbook. Bare file names resolve inside the data directory.
func (l *Library) Load(name string) (*scrapbook.Scrapbook, error) {
	path := l.resolve(name)

	data, err := os.ReadFile(path)
	if err != nil {
		l.log.WithFields(map[string]any{"path": path}).Failure(err, "error loading scrapbook")
		return nil, apperrors.NewIOError("read", path, err)
	}

	sb, err := scrapbook.Decode(data, path)
	if err != nil {
		l.log.WithFields(map[string]any{"path": path}).Failure(err, "error loading scrapbook")
		return nil, err
	}

	l.log.WithFields(map[string]any{"path": path}).Success("scrapbook loaded")
	return sb, nil
}

// List returns the saved scrapbooks, newest file name first.
func (l *Library) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, apperrors.NewIOError("list", l.dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, apperrors.NewIOError("stat", filepath.Join(l.dir, de.Name()), err)
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(l.dir, de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name > entries[j].Name
	})

	l.log.WithFields(map[string]any{"count": len(entries)}).Debug("listed scrapbooks")
	return entries, nil
}

// Remove deletes a saved scrapbook.
func (l *Library) Remove(name string) error {
	path := l.resolve(name)
	if err := os.Remove(path); err != nil {
		return apperrors.NewIOError("remove", path, err)
	}
	l.log.WithFields(map[string]any{"path": path}).Success("scrapbook removed")
	return nil
}

// ExportHTML renders sb into an HTML file inside the data directory.
func (l *Library) ExportHTML(sb *scrapbook.Scrapbook, filename string) (string, error) {
	if filename == "" {
		filename = defaultHTMLName
	}
	path := filepath.Join(l.dir, filename)

	var buf bytes.Buffer
	if err := htmlexport.Render(&buf, sb); err != nil {
		l.log.Failure(err, "error exporting to HTML")
		return "", err
	}

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		l.log.WithFields(map[string]any{"path": path}).Failure(err, "error exporting to HTML")
		return "", err
	}

	l.log.WithFields(map[string]any{"path": path}).Success("HTML export created")
	return path, nil
}

func (l *Library) resolve(name string) string {
	if filepath.Dir(name) == "." && !strings.HasPrefix(name, "."+string(filepath.Separator)) {
		return filepath.Join(l.dir, name)
	}
	return name
}

// writeAtomic writes to a temporary sibling first, then renames it into place.
func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return apperrors.NewIOError("write", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewIOError("rename", path, err)
	}

	return nil
}
