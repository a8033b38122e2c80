package pilots

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("pilot not found")

// Store is the read-only listing catalog. It is built once and safe for concurrent readers
// without locking; callers receive copies and cannot mutate it.
type Store struct {
	listings []PilotListing
	byID     map[int]int
}

func NewStore(listings []PilotListing) (*Store, error) {
	s := &Store{
		listings: make([]PilotListing, 0, len(listings)),
		byID:     make(map[int]int, len(listings)),
	}
	for _, raw := range listings {
		l, err := NewListing(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidListing, l.ID)
		}
		s.byID[l.ID] = len(s.listings)
		s.listings = append(s.listings, l)
	}
	return s, nil
}

// List returns every listing in catalog order.
func (s *Store) List() []PilotListing {
	out := make([]PilotListing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.clone()
	}
	return out
}

func (s *Store) Get(id int) (PilotListing, error) {
	idx, ok := s.byID[id]
	if !ok {
		return PilotListing{}, ErrNotFound
	}
	return s.listings[idx].clone(), nil
}

func (s *Store) Len() int {
	return len(s.listings)
}
