package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/metrics"
	"github.com/goccy/go-json"
)

// loadCollection reads a JSON array from path. A missing, empty or malformed
// file yields an empty collection; the problem is logged and startup goes on.
func loadCollection[T any](path string, log *logger.Logger) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("file", path).Msg("collection file not found, starting empty")
		} else {
			log.Err(err).Str("file", path).Msg("error reading collection file, starting empty")
		}
		return []T{}
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		log.Err(err).Str("file", path).Msg("malformed collection file, starting empty")
		return []T{}
	}
	if records == nil {
		records = []T{}
	}

	return records
}

// saveCollection writes records to path as a 2-space indented JSON array.
// The file is replaced through a temp file and rename so readers never see a
// partial write.
func saveCollection[T any](path string, records []T) (err error) {
	defer func(start time.Time) {
		metrics.RecordCollectionWrite(path, time.Since(start), err)
	}(time.Now())

	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrPersistingCollection, path, err)
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrPersistingCollection, tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: renaming %s: %w", ErrPersistingCollection, tmp, err)
	}

	return nil
}
