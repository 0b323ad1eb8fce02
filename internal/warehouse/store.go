// Package warehouse owns persistence of uploaded datasets. The core never
// touches the filesystem directly; it goes through the Store interface so a
// different backing (object store, database) can be injected later.
package warehouse

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aurora-grid/internal/ingest"
	"aurora-grid/internal/model"
)

// Store is the injected storage abstraction for ingested datasets.
type Store interface {
	// WriteDataset persists the raw CSV bytes for a dataset name,
	// replacing any previous upload of the same name.
	WriteDataset(name string, raw []byte) error

	// ReadDataset returns the raw bytes of a stored dataset.
	ReadDataset(name string) ([]byte, error)

	// ReadPrices parses a stored dataset as price observations.
	ReadPrices(name string) ([]model.PriceObservation, error)

	// List enumerates stored datasets.
	List() ([]DatasetInfo, error)
}

// DatasetInfo summarizes one stored dataset.
type DatasetInfo struct {
	Name       string    `json:"name"`
	Bytes      int64     `json:"bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// FSStore keeps each dataset as <dir>/<name>.csv, with an in-memory TTL
// cache of parsed price rows in front of the parse step. Safe for
// concurrent use.
type FSStore struct {
	dir   string
	cache *priceCache
}

// NewFSStore creates the data directory if needed.
func NewFSStore(dir string, cacheTTL time.Duration) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FSStore{dir: dir, cache: newPriceCache(cacheTTL)}, nil
}

func (s *FSStore) path(name string) string {
	// Dataset names are fixed identifiers, never user paths.
	return filepath.Join(s.dir, filepath.Base(name)+".csv")
}

func (s *FSStore) WriteDataset(name string, raw []byte) error {
	if err := os.WriteFile(s.path(name), raw, 0o644); err != nil {
		return fmt.Errorf("write dataset %q: %w", name, err)
	}
	s.cache.invalidate(name)
	return nil
}

func (s *FSStore) ReadDataset(name string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("read dataset %q: %w", name, err)
	}
	return raw, nil
}

func (s *FSStore) ReadPrices(name string) ([]model.PriceObservation, error) {
	if rows, ok := s.cache.get(name); ok {
		return rows, nil
	}
	raw, err := s.ReadDataset(name)
	if err != nil {
		return nil, err
	}
	rows, err := ingest.ParsePrices(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse dataset %q: %w", name, err)
	}
	s.cache.set(name, rows)
	return rows, nil
}

func (s *FSStore) List() ([]DatasetInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []DatasetInfo
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".csv" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, DatasetInfo{
			Name:       e.Name()[:len(e.Name())-len(".csv")],
			Bytes:      info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	return out, nil
}
