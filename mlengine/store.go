package mlengine

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrModelNotFound is returned when no bundle has been stored yet.
var ErrModelNotFound = errors.New("model bundle not found")

const (
	regressionKey     = "regression"
	classificationKey = "classification"
)

// Store persists trained model bundles.
type Store interface {
	PutRegression(b *RegressionBundle) error
	GetRegression() (*RegressionBundle, error)
	PutClassification(b *ClassificationBundle) error
	GetClassification() (*ClassificationBundle, error)
}

// FileStore keeps bundles as JSON files in a directory, one file per
// model kind. Writes land in a temp file first and are renamed into
// place, so a concurrent reader never sees a half-written bundle.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) PutRegression(b *RegressionBundle) error {
	return s.put(regressionKey, b)
}

func (s *FileStore) GetRegression() (*RegressionBundle, error) {
	var b RegressionBundle
	if err := s.get(regressionKey, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *FileStore) PutClassification(b *ClassificationBundle) error {
	return s.put(classificationKey, b)
}

func (s *FileStore) GetClassification() (*ClassificationBundle, error) {
	var b ClassificationBundle
	if err := s.get(classificationKey, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *FileStore) put(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

func (s *FileStore) get(key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrModelNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
