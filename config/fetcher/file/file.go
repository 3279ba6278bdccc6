package file

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor function that creates a Fetcher reading fpath from
// the operating system filesystem. It is a shortcut for NewFetcherFs(afero.NewOsFs(), fpath).
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return NewFetcherFs(afero.NewOsFs(), fpath)
}

// NewFetcherFs returns a constructor function that creates a Fetcher reading fpath from fs.
// The file is read at construction time and cached, so the DI container controls when
// the filesystem is touched.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcherFs(fs afero.Fs, fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		isDir, err := afero.IsDir(fs, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if isDir {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := afero.ReadFile(fs, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Ext returns the lower-case extension of the path without the leading dot.
func (f *Fetcher) Ext() string {
	return Ext(f.path)
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
