// internal/booking/filestore.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps appointments as one JSON array in a single file, the
// original full-set-replacement layout. Every write rewrites the whole
// file via a temp file and rename so a crash never leaves a torn record
// set. Callers (the Ledger) serialize access; the store itself holds no
// lock.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) List(_ context.Context) ([]Appointment, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read appointments file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var appointments []Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("parse appointments file: %w", err)
	}
	return appointments, nil
}

func (s *FileStore) Append(ctx context.Context, appt Appointment) error {
	appointments, err := s.List(ctx)
	if err != nil {
		return err
	}
	return s.writeAll(append(appointments, appt))
}

func (s *FileStore) DeleteBefore(ctx context.Context, cutoff string) (int64, error) {
	appointments, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	kept := appointments[:0]
	for _, appt := range appointments {
		if appt.Date >= cutoff {
			kept = append(kept, appt)
		}
	}
	removed := int64(len(appointments) - len(kept))
	if removed == 0 {
		return 0, nil
	}
	if err := s.writeAll(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *FileStore) writeAll(appointments []Appointment) error {
	if appointments == nil {
		appointments = []Appointment{}
	}
	data, err := json.MarshalIndent(appointments, "", "  ")
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create appointments directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".appointments-*.json")
	if err != nil {
		return fmt.Errorf("create temp appointments file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write appointments file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close appointments file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace appointments file: %w", err)
	}
	return nil
}
