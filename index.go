package geoindex

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/geoindex/geom"
	"github.com/npillmayer/geoindex/rtree"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Feature is a geometry with an identity and optional properties.
type Feature struct {
	ID         string
	Geometry   orb.Geometry
	Properties map[string]any
}

// Options configure an Index. Zero values select the defaults of package rtree.
type Options struct {
	Parameters rtree.Parameters
	Chooser    rtree.ChooseNextNode
	Splitter   rtree.Redistributor
}

// entry is the value stored in the tree. The box is computed once, so later
// changes to a caller's geometry cannot invalidate the tree.
type entry struct {
	feature Feature
	box     geom.Box
}

func entryBox(e *entry) geom.Box { return e.box }

func sameEntry(a, b *entry) bool { return a == b }

// Index is a spatial index of features, addressable by feature ID.
// An Index is not safe for concurrent use.
type Index struct {
	tree *rtree.Tree[*entry]
	byID map[string]*entry
}

// NewIndex creates an empty index.
func NewIndex(opts Options) (*Index, error) {
	tree, err := rtree.New(rtree.Config[*entry]{
		Parameters: opts.Parameters,
		Indexable:  entryBox,
		Chooser:    opts.Chooser,
		Splitter:   opts.Splitter,
	})
	if err != nil {
		return nil, err
	}
	return &Index{tree: tree, byID: make(map[string]*entry)}, nil
}

// Add inserts a feature. IDs must be unique within an index.
func (idx *Index) Add(f Feature) error {
	if f.Geometry == nil {
		return fmt.Errorf("%w: %q", ErrNoGeometry, f.ID)
	}
	bound := f.Geometry.Bound()
	if bound.IsEmpty() {
		return fmt.Errorf("%w: %q has an empty geometry", ErrNoGeometry, f.ID)
	}
	if _, exists := idx.byID[f.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, f.ID)
	}
	box, err := geom.NewFromBound(bound)
	if err != nil {
		return fmt.Errorf("feature %q: %w", f.ID, err)
	}
	e := &entry{feature: f, box: box}
	idx.tree.Insert(e)
	idx.byID[f.ID] = e
	T().Debugf("geoindex: added feature %q with box %v", f.ID, e.box)
	return nil
}

// AddAll inserts features in order and stops at the first failure. It returns
// the number of features added.
func (idx *Index) AddAll(features []Feature) (int, error) {
	for i, f := range features {
		if err := idx.Add(f); err != nil {
			return i, err
		}
	}
	return len(features), nil
}

// Remove deletes the feature with the given ID.
func (idx *Index) Remove(id string) error {
	e, ok := idx.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	if !idx.tree.Remove(e, sameEntry) {
		return fmt.Errorf("geoindex: feature %q is registered but not in the tree", id)
	}
	delete(idx.byID, id)
	T().Debugf("geoindex: removed feature %q", id)
	return nil
}

// Get returns the feature with the given ID.
func (idx *Index) Get(id string) (Feature, bool) {
	e, ok := idx.byID[id]
	if !ok {
		return Feature{}, false
	}
	return e.feature, true
}

// Len returns the number of features.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Bounds returns the bound of all features. ok is false for an empty index.
func (idx *Index) Bounds() (bound orb.Bound, ok bool) {
	box, ok := idx.tree.Bounds()
	if !ok {
		return orb.Bound{}, false
	}
	return box.Bound(), true
}

// Search returns all features whose bounding box intersects b, ordered by ID.
func (idx *Index) Search(b orb.Bound) []Feature {
	var result []Feature
	idx.tree.Search(geom.FromBound(b), func(e *entry) bool {
		result = append(result, e.feature)
		return true
	})
	sortByID(result)
	return result
}

// Containing returns all features covering point p, ordered by ID.
// Polygonal geometries are tested exactly, all other geometries by their
// bounding box.
func (idx *Index) Containing(p orb.Point) []Feature {
	var result []Feature
	idx.tree.Search(geom.FromPoint(p), func(e *entry) bool {
		if covers(e.feature.Geometry, p) {
			result = append(result, e.feature)
		}
		return true
	})
	sortByID(result)
	return result
}

func covers(g orb.Geometry, p orb.Point) bool {
	switch g := g.(type) {
	case orb.Point:
		return g.Equal(p)
	case orb.Ring:
		return planar.RingContains(g, p)
	case orb.Polygon:
		return planar.PolygonContains(g, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, p)
	}
	return true
}

func sortByID(features []Feature) {
	slices.SortFunc(features, func(a, b Feature) int {
		return strings.Compare(a.ID, b.ID)
	})
}

// Clear removes all features.
func (idx *Index) Clear() {
	idx.tree.Clear()
	clear(idx.byID)
}

// Check validates the structure of the underlying tree and its agreement
// with the ID registry.
func (idx *Index) Check() error {
	if err := idx.tree.Check(); err != nil {
		return err
	}
	if len(idx.byID) != idx.tree.Len() {
		return fmt.Errorf("%w: %d IDs registered for %d features", rtree.ErrCorrupted, len(idx.byID), idx.tree.Len())
	}
	return nil
}

// Dump writes the tree structure to w (for debugging purposes).
func (idx *Index) Dump(w io.Writer) error {
	return idx.tree.Dump(w)
}

// ToDot writes the tree structure in Graphviz DOT format to w.
func (idx *Index) ToDot(w io.Writer) error {
	return idx.tree.ToDot(w)
}

// Stats reports the shape of the underlying tree.
func (idx *Index) Stats() rtree.Stats {
	return idx.tree.Stats()
}

func (e *entry) String() string {
	return e.feature.ID
}
