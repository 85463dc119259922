// Package template implements the in-memory quick template store.
package template

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// Store holds the quick templates in insertion order. Operations keyed by
// an id that is not present are no-ops; the store enforces nothing else.
// Validation of new templates happens at the edge, before Add is called.
type Store struct {
	items []model.QuickTemplate
}

// NewStore creates a store seeded with the given templates.
func NewStore(initial []model.QuickTemplate) *Store {
	s := &Store{}
	s.ReplaceAll(initial)
	return s
}

// Add appends a template. The caller supplies the id; ids from NewID are
// unique enough in practice and are not formally deduplicated.
func (s *Store) Add(tpl model.QuickTemplate) {
	s.items = append(s.items, tpl)
}

// Update replaces the template whose id matches tpl.ID. Unknown ids are
// ignored.
func (s *Store) Update(tpl model.QuickTemplate) {
	for i, t := range s.items {
		if t.ID == tpl.ID {
			s.items[i] = tpl
			return
		}
	}
}

// Remove deletes the template with the given id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ReplaceAll swaps the entire collection, used for the initial load from
// the persistence backend.
func (s *Store) ReplaceAll(templates []model.QuickTemplate) {
	s.items = make([]model.QuickTemplate, len(templates))
	copy(s.items, templates)
}

// Templates returns a snapshot of the collection in insertion order.
func (s *Store) Templates() []model.QuickTemplate {
	out := make([]model.QuickTemplate, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the template with the given id, if present.
func (s *Store) Get(id string) (model.QuickTemplate, bool) {
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return model.QuickTemplate{}, false
}

// Len returns the number of stored templates.
func (s *Store) Len() int {
	return len(s.items)
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a template id: millisecond timestamp plus a short random
// base36 suffix. The format is stable so ids sort roughly by creation time.
func NewID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// unavailable; fall back to a timestamp-derived digit.
			suffix[i] = suffixAlphabet[time.Now().UnixNano()%36]
			continue
		}
		suffix[i] = suffixAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), suffix)
}
