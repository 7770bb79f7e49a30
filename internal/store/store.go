package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mmcdole/cinefind/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// ErrEmptyTerm is returned when a document has no search term to key on
var ErrEmptyTerm = errors.New("search term is required")

// Bucket names
var (
	bucketSearches = []byte("searches")
)

// BoltStore implements domain.PopularityStore using BoltDB.
// Documents are keyed by search term and encoded as JSON.
type BoltStore struct {
	db *bolt.DB

	// Memory-only mode (no persistence) when db is nil
	mu  sync.Mutex
	mem map[string]domain.SearchDocument

	now func() time.Time
}

// NewBoltStore opens (or creates) the database at path.
// An empty path returns a memory-only store.
func NewBoltStore(path string) (*BoltStore, error) {
	if path == "" {
		return NewMemoryStore(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSearches)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, now: time.Now}, nil
}

// NewMemoryStore returns a store that keeps documents in process memory only
func NewMemoryStore() *BoltStore {
	return &BoltStore{mem: make(map[string]domain.SearchDocument), now: time.Now}
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// bump applies one increment to an existing document, or initializes a new one
func bump(existing *domain.SearchDocument, doc domain.SearchDocument, now time.Time) domain.SearchDocument {
	if existing == nil {
		doc.ID = uuid.NewString()
		doc.Count = 1
		doc.UpdatedAt = now
		return doc
	}
	updated := *existing
	updated.Count++
	updated.UpdatedAt = now
	return updated
}

// Increment bumps the counter for doc.SearchTerm, creating the document when absent
func (s *BoltStore) Increment(ctx context.Context, doc domain.SearchDocument) (domain.SearchDocument, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchDocument{}, err
	}
	if doc.SearchTerm == "" {
		return domain.SearchDocument{}, ErrEmptyTerm
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		var existing *domain.SearchDocument
		if cur, ok := s.mem[doc.SearchTerm]; ok {
			existing = &cur
		}
		updated := bump(existing, doc, s.now())
		s.mem[doc.SearchTerm] = updated
		return updated, nil
	}

	var updated domain.SearchDocument
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSearches)
		key := []byte(doc.SearchTerm)

		var existing *domain.SearchDocument
		if v := b.Get(key); v != nil {
			var cur domain.SearchDocument
			if err := json.Unmarshal(v, &cur); err != nil {
				return fmt.Errorf("failed to decode document %q: %w", doc.SearchTerm, err)
			}
			existing = &cur
		}

		updated = bump(existing, doc, s.now())
		data, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
	if err != nil {
		return domain.SearchDocument{}, err
	}
	return updated, nil
}

// get returns the document for a search term
func (s *BoltStore) get(ctx context.Context, term string) (domain.SearchDocument, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchDocument{}, err
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		doc, ok := s.mem[term]
		if !ok {
			return domain.SearchDocument{}, domain.ErrNotFound
		}
		return doc, nil
	}

	var doc domain.SearchDocument
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSearches).Get([]byte(term))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &doc)
	})
	if err != nil {
		return domain.SearchDocument{}, err
	}
	if !found {
		return domain.SearchDocument{}, domain.ErrNotFound
	}
	return doc, nil
}

// Top returns up to n documents ordered by count descending
func (s *BoltStore) Top(ctx context.Context, n int) ([]domain.SearchDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []domain.SearchDocument{}, nil
	}

	var docs []domain.SearchDocument
	if s.db == nil {
		s.mu.Lock()
		docs = make([]domain.SearchDocument, 0, len(s.mem))
		for _, doc := range s.mem {
			docs = append(docs, doc)
		}
		s.mu.Unlock()
	} else {
		err := s.db.View(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketSearches).ForEach(func(k, v []byte) error {
				var doc domain.SearchDocument
				if err := json.Unmarshal(v, &doc); err != nil {
					return fmt.Errorf("failed to decode document %q: %w", k, err)
				}
				docs = append(docs, doc)
				return nil
			})
		})
		if err != nil {
			return nil, err
		}
	}

	return topN(docs, n), nil
}

// topN sorts by count descending (search term ascending on ties) and truncates
func topN(docs []domain.SearchDocument, n int) []domain.SearchDocument {
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Count != docs[j].Count {
			return docs[i].Count > docs[j].Count
		}
		return docs[i].SearchTerm < docs[j].SearchTerm
	})
	if len(docs) > n {
		docs = docs[:n]
	}
	if docs == nil {
		docs = []domain.SearchDocument{}
	}
	return docs
}
