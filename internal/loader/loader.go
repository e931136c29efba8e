// Package loader reads input files containing a top-level JSON array of
// records. Both the price catalogue and the sales record use this shape.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// ErrNotSequence indicates that the input parsed as valid JSON but its
// top-level value is not an array of records.
var ErrNotSequence = errors.New("top-level JSON value is not an array")

// Load reads the file at path and decodes it as a JSON array of T.
//
// Every failure is logged with the offending path and returned as a wrapped
// error; the caller decides whether the failure is fatal. No partial data is
// ever returned.
func Load[T any](logger *slog.Logger, path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error("input file not found", slog.String("path", path))
		} else {
			logger.Error("unable to read input file", slog.String("path", path), slog.Any("error", err))
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// The sequence check reads the first token, so that a mistyped element
	// inside a valid array is not mistaken for a top-level shape problem.
	tok, err := json.NewDecoder(bytes.NewReader(data)).Token()
	if err != nil {
		logger.Error("input is not valid JSON", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		logger.Error("input is not a JSON array of records",
			slog.String("path", path), slog.String("got", fmt.Sprintf("%v", tok)))
		return nil, fmt.Errorf("parse %s: %w", path, ErrNotSequence)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Error("unable to decode input records", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return records, nil
}
