package workbench

import (
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var theoremsBucket = []byte("theorems")

// TheoremRecord is what SAVE persists. Only the sequent text is
// trusted on load; the proof is always re-derived.
type TheoremRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sequent   string    `json:"sequent"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the bolt-backed theorem library, keyed by name.
type Store struct {
	boltDB *bolt.DB
}

func newStore(boltDB *bolt.DB) (*Store, error) {
	err := boltDB.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(theoremsBucket)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating theorems bucket")
	}
	return &Store{boltDB: boltDB}, nil
}

func (s *Store) Save(name string, sequent string, depth int) (*TheoremRecord, error) {
	rec := &TheoremRecord{
		ID:        uuid.New().String(),
		Name:      name,
		Sequent:   sequent,
		Depth:     depth,
		CreatedAt: time.Now().UTC(),
	}

	err := s.boltDB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(theoremsBucket)
		if bucket.Get([]byte(name)) != nil {
			return &theoremAlreadyExists{Name: name}
		}
		encoded, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(name), encoded)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) Load(name string) (*TheoremRecord, error) {
	var rec *TheoremRecord
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket(theoremsBucket).Get([]byte(name))
		if encoded == nil {
			return &noSuchTheorem{Name: name}
		}
		rec = &TheoremRecord{}
		return json.Unmarshal(encoded, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) List() ([]*TheoremRecord, error) {
	var records []*TheoremRecord
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		return tx.Bucket(theoremsBucket).ForEach(func(_, encoded []byte) error {
			rec := &TheoremRecord{}
			if err := json.Unmarshal(encoded, rec); err != nil {
				return errors.Wrap(err, "decoding theorem record")
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// count is for metrics; errors are deliberately swallowed there.
func (s *Store) count() int {
	n := 0
	s.boltDB.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(theoremsBucket).Stats().KeyN
		return nil
	})
	return n
}
