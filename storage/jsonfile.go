package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	serverError "github.com/supakorn-kn/books-api/errors"
	"github.com/supakorn-kn/books-api/objects"
)

// JSONFileStore keeps the collection in a single JSON document on disk.
type JSONFileStore struct {
	path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Load(ctx context.Context) (objects.Collection, error) {

	data, err := os.ReadFile(s.path)
	if err != nil {

		if errors.Is(err, fs.ErrNotExist) {
			return objects.NewCollection(), nil
		}

		return objects.Collection{}, serverError.StorageLoadFailedError.Wrap(err, s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return objects.NewCollection(), nil
	}

	var c objects.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return objects.Collection{}, serverError.StorageLoadFailedError.Wrap(err, s.path, err)
	}

	return c.Clone(), nil
}

// Save writes c to a temp file next to the target and renames it over the target, so
// readers of the path see either the old or the new document.
func (s *JSONFileStore) Save(ctx context.Context, c objects.Collection) error {

	if err := s.save(c.Clone()); err != nil {
		return serverError.StorageSaveFailedError.Wrap(err, s.path, err)
	}

	return nil
}

func (s *JSONFileStore) save(c objects.Collection) error {

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}

	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
