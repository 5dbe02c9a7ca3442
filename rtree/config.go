package rtree

import (
	"fmt"

	"github.com/npillmayer/geoindex/geom"
)

const (
	// DefaultMaxElements is the fan-out used when no parameters are configured.
	DefaultMaxElements = 16
	// DefaultMinElements is the lower occupancy bound matching DefaultMaxElements.
	DefaultMinElements = 4
)

// Parameters bound the number of elements per node.
//
// Every node except the root holds between MinElements and MaxElements
// elements. MinElements must not exceed MaxElements/2, otherwise an
// overflowing node could not be split into two legal halves.
type Parameters struct {
	MaxElements int
	MinElements int
}

// DefaultParameters returns {DefaultMaxElements, DefaultMinElements}.
func DefaultParameters() Parameters {
	return Parameters{MaxElements: DefaultMaxElements, MinElements: DefaultMinElements}
}

func (p Parameters) validate() error {
	if p.MaxElements < 2 {
		return fmt.Errorf("%w: max elements must be at least 2, is %d", ErrInvalidConfig, p.MaxElements)
	}
	if p.MinElements < 1 {
		return fmt.Errorf("%w: min elements must be at least 1, is %d", ErrInvalidConfig, p.MinElements)
	}
	if p.MinElements > p.MaxElements/2 {
		return fmt.Errorf("%w: min elements %d exceeds half of max elements %d",
			ErrInvalidConfig, p.MinElements, p.MaxElements)
	}
	return nil
}

// Config configures an R-tree over values of type V.
type Config[V any] struct {
	// Parameters bound node occupancy. The zero value selects DefaultParameters.
	Parameters Parameters
	// Indexable extracts the bounding box of a value. It must be stable: the
	// same value must always yield the same box.
	Indexable func(V) geom.Box
	// Chooser selects the subtree to descend into. Defaults to ContentDiff.
	Chooser ChooseNextNode
	// Splitter partitions overflowing nodes. Defaults to Quadratic.
	Splitter Redistributor
}

func (cfg Config[V]) normalized() Config[V] {
	if cfg.Parameters == (Parameters{}) {
		cfg.Parameters = DefaultParameters()
	}
	if cfg.Chooser == nil {
		cfg.Chooser = ContentDiff{}
	}
	if cfg.Splitter == nil {
		cfg.Splitter = Quadratic{}
	}
	return cfg
}

func (cfg Config[V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Indexable == nil {
		return fmt.Errorf("%w: indexable function is required", ErrInvalidConfig)
	}
	return cfg.Parameters.validate()
}
