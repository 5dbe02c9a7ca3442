package rtree

import (
	"testing"

	"github.com/npillmayer/geoindex/geom"
)

func TestContentDiffPicksChildNeedingNoExpansion(t *testing.T) {
	boxes := []geom.Box{geom.Rect(0, 0, 1, 1), geom.Rect(5, 5, 6, 6)}
	if got := (ContentDiff{}).Choose(boxes, geom.Pt(0.5, 0.5), 1); got != 0 {
		t.Errorf("expected child 0, got %d", got)
	}
	if got := (ContentDiff{}).Choose(boxes, geom.Pt(5.5, 5.5), 1); got != 1 {
		t.Errorf("expected child 1, got %d", got)
	}
}

func TestContentDiffBreaksTiesByExpandedContent(t *testing.T) {
	// Both children contain the point, so both need zero enlargement. The
	// smaller one must win, even though it comes second.
	boxes := []geom.Box{geom.Rect(0, 0, 4, 4), geom.Rect(1, 1, 3, 3)}
	for range 3 {
		if got := (ContentDiff{}).Choose(boxes, geom.Pt(2, 2), 1); got != 1 {
			t.Fatalf("expected child 1 with smaller expanded content, got %d", got)
		}
	}
	// Equal enlargement of 1 and equal expanded content of 5: first index wins.
	boxes = []geom.Box{geom.Rect(0, 0, 2, 2), geom.Rect(3, 0, 5, 2)}
	if got := (ContentDiff{}).Choose(boxes, geom.Pt(2.5, 1), 1); got != 0 {
		t.Errorf("expected first child on full tie, got %d", got)
	}
}

func TestContentDiffMinimizesEnlargementFirst(t *testing.T) {
	// The big box needs less enlargement than the small far away one.
	boxes := []geom.Box{geom.Rect(20, 20, 21, 21), geom.Rect(0, 0, 10, 10)}
	if got := (ContentDiff{}).Choose(boxes, geom.Pt(11, 5), 1); got != 1 {
		t.Errorf("expected child 1, got %d", got)
	}
}

func TestChooseOnEmptyChildrenPanics(t *testing.T) {
	for _, chooser := range []ChooseNextNode{ContentDiff{}, MinOverlap{}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%T: expected panic for empty children", chooser)
				}
			}()
			chooser.Choose(nil, geom.Pt(0, 0), 1)
		}()
	}
}

func TestMinOverlapAvoidsOverlapAboveLeaves(t *testing.T) {
	boxes := []geom.Box{
		geom.Rect(0, 0, 2, 2),
		geom.Rect(3, 0, 5, 2),
		geom.Rect(2.2, 1.5, 2.4, 50),
	}
	p := geom.Pt(2.5, 1)
	if got := (ContentDiff{}).Choose(boxes, p, 1); got != 0 {
		t.Fatalf("expected content diff to choose child 0, got %d", got)
	}
	// Growing child 0 would overlap child 2, growing child 1 would not.
	if got := (MinOverlap{}).Choose(boxes, p, 1); got != 1 {
		t.Errorf("expected min overlap to choose child 1, got %d", got)
	}
	// Higher up the tree it falls back to content difference.
	if got := (MinOverlap{}).Choose(boxes, p, 2); got != 0 {
		t.Errorf("expected min overlap at level 2 to choose child 0, got %d", got)
	}
}
