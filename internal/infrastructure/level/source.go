package level

import (
	"errors"
	"log"
)

// Kind tells where a resolved grid came from
type Kind int

const (
	// KindLoaded means the grid was read from the level store
	KindLoaded Kind = iota
	// KindProvided means the store had no usable grid and the caller's grid is used
	KindProvided
)

func (k Kind) String() string {
	switch k {
	case KindLoaded:
		return "loaded"
	case KindProvided:
		return "provided"
	default:
		return "unknown"
	}
}

// Source is a resolved level grid
type Source struct {
	Kind  Kind
	Level int
	Grid  [][]int
}

// Resolve picks the stored grid of level n when one exists and falls back
// to provided otherwise. A nil store always falls back.
func Resolve(store *Store, n int, provided [][]int) Source {
	if store != nil {
		grid, err := store.Load(n)
		switch {
		case err == nil:
			return Source{Kind: KindLoaded, Level: n, Grid: grid}
		case errors.Is(err, ErrNotFound):
		default:
			log.Printf("Ignoring stored level %d: %v", n, err)
		}
	}
	return Source{Kind: KindProvided, Level: n, Grid: provided}
}
