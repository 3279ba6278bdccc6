// Package file provides a file-based DataFetcher implementation for the config package.
//
// Files are read through github.com/spf13/afero, so tests and embedding programs can
// supply an in-memory filesystem. The file is read at construction time and cached,
// meaning subsequent calls to Fetch() return the same data without re-reading it.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
