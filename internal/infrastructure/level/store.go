// Package level resolves the tile grid a session plays on.
package level

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned when no grid is stored for a level
var ErrNotFound = errors.New("level not found")

// ItemStore is the persistence surface the Store needs.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes level grids by number
type Store struct {
	items ItemStore
}

// NewStore creates a store over items
func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// OpenStore opens the per-user data directory for appName
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open level store: %w", err)
	}
	return NewStore(m), nil
}

// Key returns the item key of level n
func Key(n int) string {
	return fmt.Sprintf("level%d_data", n)
}

// Load returns the stored grid of level n, or ErrNotFound
func (s *Store) Load(n int) ([][]int, error) {
	data, err := s.items.LoadItem(Key(n))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", Key(n), err)
	}
	if data == nil {
		return nil, fmt.Errorf("load %s: %w", Key(n), ErrNotFound)
	}

	var grid [][]int
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("decode %s: %w", Key(n), err)
	}
	return grid, nil
}

// Save stores grid as level n
func (s *Store) Save(n int, grid [][]int) error {
	data, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Key(n), err)
	}
	if err := s.items.SaveItem(Key(n), data); err != nil {
		return fmt.Errorf("save %s: %w", Key(n), err)
	}
	return nil
}
