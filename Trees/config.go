package Trees

import (
	"cmp"
	"fmt"
	"math/rand/v2"

	"github.com/cornelk/hashmap"
)

// IndexKind selects the value-to-node lookup index of a tree.
type IndexKind uint8

const (
	// NoIndex locates values by descending the tree.
	NoIndex IndexKind = iota
	// HashMapIndex keeps a github.com/cornelk/hashmap map from values to nodes.
	HashMapIndex
)

func (k IndexKind) String() string {
	switch k {
	case NoIndex:
		return "none"
	case HashMapIndex:
		return "hashmap"
	}
	return fmt.Sprintf("IndexKind(%d)", uint8(k))
}

// DefaultSeed seeds the priority source of a Treap when Config.Seed is 0.
const DefaultSeed uint64 = 0x9e3779b97f4a7c15

// Config configures a tree. The zero value is a valid configuration.
type Config struct {
	// Index selects the optional lookup index.
	Index IndexKind
	// Seed seeds the priority source of a Treap. Other trees ignore it.
	Seed uint64
}

// RandomSeed draws a seed for Config.Seed from the runtime's random source.
func RandomSeed() uint64 {
	return rand.Uint64()
}

func (cfg Config) normalized() Config {
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Index > HashMapIndex {
		return fmt.Errorf("%w: unknown index kind %v", ErrInvalidConfig, cfg.Index)
	}
	return nil
}

// pickConfig returns the single optional configuration of a constructor call.
func pickConfig(cfgs []Config) (Config, error) {
	var cfg Config
	switch len(cfgs) {
	case 0:
	case 1:
		cfg = cfgs[0]
	default:
		return cfg, fmt.Errorf("%w: at most one Config allowed, got %d", ErrInvalidConfig, len(cfgs))
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// index maps every value of a tree to the node holding it.
type index[T cmp.Ordered, N any] interface {
	Get(T) (N, bool)
	Set(T, N)
	Del(T)
	Len() int
}

func newIndex[T cmp.Ordered, N any](kind IndexKind) index[T, N] {
	if kind == HashMapIndex {
		return hashIndex[T, N]{hashmap.New[T, N]()}
	}
	return nil
}

type hashIndex[T cmp.Ordered, N any] struct {
	m *hashmap.Map[T, N]
}

func (x hashIndex[T, N]) Get(v T) (N, bool) { return x.m.Get(v) }
func (x hashIndex[T, N]) Set(v T, n N)      { x.m.Set(v, n) }
func (x hashIndex[T, N]) Del(v T)           { x.m.Del(v) }
func (x hashIndex[T, N]) Len() int          { return x.m.Len() }
