package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/datasource"
	"github.com/go-sif/tidy/logging"
)

// Load parses every file matching glob and concatenates the results
func Load(glob string, parser tidy.TableParser, schema tidy.Schema) (tidy.Table, error) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	sort.Strings(matches)
	logger := logging.Logger("file")
	readers := make([]io.Reader, 0, len(matches))
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func(f *os.File) {
			if err := f.Close(); err != nil {
				logger.Warn().Err(err).Str("path", f.Name()).Msg("couldn't close file")
			}
		}(f)
		logger.Debug().Str("path", path).Msg("loading file")
		readers = append(readers, f)
	}
	return datasource.LoadAll(parser, schema, readers...)
}
