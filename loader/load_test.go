package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/geoindex"
	"github.com/npillmayer/geoindex/rtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newIndex(t *testing.T) *geoindex.Index {
	t.Helper()
	idx, err := geoindex.NewIndex(geoindex.Options{Parameters: rtree.Parameters{MaxElements: 4, MinElements: 2}})
	require.NoError(t, err)
	return idx
}

func TestLoadFilesInOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	dir := t.TempDir()
	var lines strings.Builder
	for i := range 50 {
		lines.WriteString(strings.Repeat(" ", i%3))
		lines.WriteString("p")
		lines.WriteString(strings.Repeat("x", i))
		lines.WriteString(" 1 2\n")
	}
	points := writeFile(t, dir, "points.txt", lines.String())
	boxes := writeFile(t, dir, "boxes.csv", "# boxes\nb1,0,0,10,10\nb2,5,5,6,6\n")
	geo := writeFile(t, dir, "places.geojson", `{"type":"FeatureCollection","features":[
		{"type":"Feature","id":"g","geometry":{"type":"Point","coordinates":[3,4]},"properties":{}}]}`)

	idx := newIndex(t)
	ld := New(context.Background(), idx)
	progress := ld.Subscribe(8)
	n, err := ld.Load(points, boxes, geo)
	require.NoError(t, err)
	assert.Equal(t, 53, n)
	assert.Equal(t, 53, idx.Len())
	require.NoError(t, idx.Check())

	var got []Progress
	for m := range progress {
		got = append(got, m.(Progress))
	}
	require.Len(t, got, 3)
	assert.Equal(t, Progress{Path: points, Features: 50}, got[0])
	assert.Equal(t, Progress{Path: boxes, Features: 2}, got[1])
	assert.Equal(t, Progress{Path: geo, Features: 1}, got[2])

	hits := idx.Search(orb.Bound{Min: orb.Point{2.5, 3.5}, Max: orb.Point{3.5, 4.5}})
	ids := make([]string, len(hits))
	for i, f := range hits {
		ids[i] = f.ID
	}
	assert.Equal(t, []string{"b1", "g"}, ids)
}

func TestLoadStopsAtFirstFailingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "a 1 1\nb 2 2\n")
	bad := writeFile(t, dir, "bad.txt", "c 3 3\nd 4\n")
	never := writeFile(t, dir, "never.txt", "e 5 5\n")

	idx := newIndex(t)
	ld := New(context.Background(), idx)
	progress := ld.Subscribe(4)
	n, err := ld.Load(good, bad, never)
	assert.ErrorContains(t, err, "bad.txt")
	assert.ErrorContains(t, err, "line 2")
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, idx.Len())

	var got []Progress
	for m := range progress {
		got = append(got, m.(Progress))
	}
	require.Len(t, got, 2)
	assert.NoError(t, got[0].Err)
	assert.Error(t, got[1].Err)
}

func TestLoadReportsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "a 1 1\n")
	second := writeFile(t, dir, "second.txt", "a 2 2\n")
	_, err := New(context.Background(), newIndex(t)).Load(first, second)
	assert.ErrorIs(t, err, geoindex.ErrDuplicateID)
}

func TestParseFileRejectsDirectories(t *testing.T) {
	_, err := ParseFile(t.TempDir())
	assert.ErrorContains(t, err, "not a regular file")
	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSubscribeAfterLoadYieldsClosedChannel(t *testing.T) {
	dir := t.TempDir()
	points := writeFile(t, dir, "points.txt", "a 1 1\n")
	ld := New(context.Background(), newIndex(t))
	_, err := ld.Load(points)
	require.NoError(t, err)

	select {
	case _, open := <-ld.Subscribe(1):
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatalf("late subscription blocks")
	}
}
