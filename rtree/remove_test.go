package rtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestRemoveFromLeafRoot(t *testing.T) {
	tree := makeTree(t, 4, 2, Quadratic{})
	tree.InsertAll(pt(1, 0, 0), pt(2, 1, 1), pt(3, 2, 2))
	if !tree.Remove(pt(2, 1, 1), sameItem) {
		t.Fatalf("expected value #2 to be removed")
	}
	mustCheck(t, tree)
	if tree.Len() != 2 || collect(tree)[2] {
		t.Errorf("value #2 still present")
	}
	if tree.Remove(pt(2, 1, 1), sameItem) {
		t.Errorf("value #2 removed twice")
	}
	tree.Remove(pt(1, 0, 0), sameItem)
	tree.Remove(pt(3, 2, 2), sameItem)
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Height() != 0 {
		t.Errorf("expected empty tree, height is %d", tree.Height())
	}
}

func TestRemoveUnknownValue(t *testing.T) {
	tree, _, _ := twoLeafTree(t)
	if tree.Remove(pt(99, 0, 0), sameItem) {
		t.Errorf("removed a value never inserted")
	}
	if tree.Remove(pt(1, 50, 50), sameItem) {
		t.Errorf("found value #1 outside of its box")
	}
	mustCheck(t, tree)
	if tree.Len() != 8 {
		t.Errorf("tree changed by failed removals")
	}
}

func TestRemoveCollapsesRoot(t *testing.T) {
	tree := makeTree(t, 4, 2, Quadratic{})
	tree.InsertAll(pt(1, 0, 0), pt(2, 0, 1), pt(3, 1, 0), pt(4, 10, 10), pt(5, 10, 11))
	if tree.LeafsLevel() != 1 {
		t.Fatalf("expected two leaves under an inner root")
	}
	// The leaf holding #4 and #5 drops below 2 values and is dissolved. #5
	// moves to the other leaf, leaving the root with a single child.
	if !tree.Remove(pt(4, 10, 10), sameItem) {
		t.Fatalf("expected value #4 to be removed")
	}
	mustCheck(t, tree)
	if tree.LeafsLevel() != 0 || !tree.nodes.node(tree.root).isLeaf() {
		t.Fatalf("expected root to collapse into a leaf, leafs level is %d", tree.LeafsLevel())
	}
	ids := collect(tree)
	for _, id := range []int{1, 2, 3, 5} {
		if !ids[id] {
			t.Errorf("value #%d lost during condense", id)
		}
	}
}

func TestRemoveKeepsDuplicateBoxes(t *testing.T) {
	tree := makeTree(t, 4, 2, Linear{})
	for i := range 12 {
		tree.Insert(pt(i, 1, 1))
	}
	mustCheck(t, tree)
	for i := 0; i < 12; i += 2 {
		if !tree.Remove(pt(i, 1, 1), sameItem) {
			t.Fatalf("expected value #%d to be removed", i)
		}
		mustCheck(t, tree)
	}
	ids := collect(tree)
	if len(ids) != 6 {
		t.Fatalf("expected 6 values left, have %d", len(ids))
	}
	for id := range ids {
		if id%2 == 0 {
			t.Errorf("value #%d should have been removed", id)
		}
	}
}

func TestRandomRemovalsKeepInvariants(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(11))
	for _, rd := range redistributors {
		tree := makeTree(t, 6, 2, rd.splitter)
		items := make([]item, 300)
		for i := range items {
			items[i] = randomItem(r, i)
			tree.Insert(items[i])
		}
		r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		for k, it := range items {
			if !tree.Remove(it, sameItem) {
				t.Fatalf("%s: value #%d not found", rd.name, it.id)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("%s: after removal #%d: %v", rd.name, k, err)
			}
			if tree.Len() != len(items)-k-1 {
				t.Fatalf("%s: expected %d values, have %d", rd.name, len(items)-k-1, tree.Len())
			}
		}
		if tree.nodes.live() != 0 {
			t.Errorf("%s: %d nodes leaked", rd.name, tree.nodes.live())
		}
	}
}
