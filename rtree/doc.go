/*
Package rtree provides an in-memory R-tree spatial index.

The tree is balanced: all leaves sit at the same depth (the leafs level),
and every node except the root holds between Parameters.MinElements and
Parameters.MaxElements elements. Inner nodes store one bounding box per child,
which always covers everything reachable below that child.

Insertion is a single recursive descent:
  - at each inner node a ChooseNextNode policy selects a child,
  - the child's stored box is widened to cover the new item before descending,
  - the item is appended at its target level (a leaf for values, an inner node
    for re-inserted subtrees),
  - on the way back up every overflowing node is split by a Redistributor,
    possibly growing a new root. This is the only way the tree gets taller.

Policies are plain values injected through Config:

	tree, err := rtree.New(rtree.Config[Item]{
		Parameters: rtree.Parameters{MaxElements: 16, MinElements: 4},
		Indexable:  func(it Item) geom.Box { return it.Box },
		Chooser:    rtree.MinOverlap{},
		Splitter:   rtree.RStar{},
	})

Trees are not safe for concurrent mutation; callers must serialize writers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'geoindex'
func tracer() tracing.Trace {
	return tracing.Select("geoindex")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
