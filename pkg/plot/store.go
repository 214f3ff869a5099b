package plot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/buntdb"
)

const (
	// UpdatedIndexName orders stored plots by last update.
	UpdatedIndexName = "updated_index"

	keyPrefix = "plot:"
)

// StoredPlot is a plot document kept by a Store.
type StoredPlot struct {
	ID        string          `json:"id"`
	Document  json.RawMessage `json:"document"`
	Traces    int             `json:"traces"`
	CreatedAt int64           `json:"created_at"`
	UpdatedAt int64           `json:"updated_at"`
}

func (s *StoredPlot) Created() time.Time { return time.Unix(0, s.CreatedAt) }

func (s *StoredPlot) Updated() time.Time { return time.Unix(0, s.UpdatedAt) }

// Plot decodes the stored document.
func (s *StoredPlot) Plot() (*Plot, error) {
	return FromJSON(s.Document)
}

// Store persists plot documents in BuntDB, in memory (":memory:") or in a
// file.
type Store struct {
	db  *buntdb.DB
	now func() time.Time
}

// StoreConfig holds configuration options for BuntDB
type StoreConfig struct {
	// SyncPolicy determines how often data is synchronized to disk
	SyncPolicy buntdb.SyncPolicy
}

// DefaultStoreConfig returns the default configuration for BuntDB
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{SyncPolicy: buntdb.EverySecond}
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() (*Store, error) {
	return NewStore(":memory:", DefaultStoreConfig())
}

// NewStore opens or creates the store at path.
func NewStore(path string, config StoreConfig) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	if err := db.SetConfig(buntdb.Config{SyncPolicy: config.SyncPolicy}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure buntdb: %w", err)
	}

	if err := db.CreateIndex(UpdatedIndexName, keyPrefix+"*", buntdb.IndexJSON("updated_at")); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index %s: %w", UpdatedIndexName, err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Put stores a new plot and returns its id.
func (s *Store) Put(p *Plot) (string, error) {
	doc, err := p.ToJSON()
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	return id, s.put(id, []byte(doc), len(p.Data()))
}

// PutDocument stores an encoded plot document and returns its id.
func (s *Store) PutDocument(doc []byte) (string, error) {
	p, err := FromJSON(doc)
	if err != nil {
		return "", err
	}
	return s.Put(p)
}

// Replace stores p under id, creating the entry if needed.
func (s *Store) Replace(id string, p *Plot) error {
	doc, err := p.ToJSON()
	if err != nil {
		return err
	}
	return s.put(id, []byte(doc), len(p.Data()))
}

func (s *Store) put(id string, doc []byte, traceCount int) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		now := s.now().UnixNano()
		entry := StoredPlot{
			ID:        id,
			Document:  doc,
			Traces:    traceCount,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if previous, err := tx.Get(keyPrefix + id); err == nil {
			var old StoredPlot
			if err := json.Unmarshal([]byte(previous), &old); err == nil {
				entry.CreatedAt = old.CreatedAt
			}
		}

		content, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal plot: %w", err)
		}
		if _, _, err := tx.Set(keyPrefix+id, string(content), nil); err != nil {
			return fmt.Errorf("failed to store plot: %w", err)
		}
		return nil
	})
}

// Get returns the stored entry, or ErrPlotNotFound.
func (s *Store) Get(id string) (*StoredPlot, error) {
	var entry StoredPlot
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(keyPrefix + id)
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &entry)
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read plot %s: %w", id, err)
	}
	return &entry, nil
}

// Load returns the decoded plot stored under id.
func (s *Store) Load(id string) (*Plot, error) {
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return entry.Plot()
}

// List returns every stored plot, most recently updated first.
func (s *Store) List() ([]*StoredPlot, error) {
	plots := make([]*StoredPlot, 0)
	err := s.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.Descend(UpdatedIndexName, func(key, value string) bool {
			var entry StoredPlot
			if err := json.Unmarshal([]byte(value), &entry); err != nil {
				decodeErr = fmt.Errorf("failed to decode %s: %w", strings.TrimPrefix(key, keyPrefix), err)
				return false
			}
			plots = append(plots, &entry)
			return true
		})
		if err != nil {
			return err
		}
		return decodeErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}
	return plots, nil
}

// Delete removes a plot.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(keyPrefix + id)
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPlotNotFound, id)
	}
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
