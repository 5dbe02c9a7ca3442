package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/geoindex"
)

// Progress is broadcast once for every file, after its features have been
// added to the index or loading it has failed.
type Progress struct {
	Path     string
	Features int // number of features added from this file
	Err      error
}

// Loader adds the contents of feature files to an index.
// A Loader is good for a single call to Load.
type Loader struct {
	idx  *geoindex.Index
	ctx  context.Context
	cast *caster.Caster // broadcaster for progress messages
}

// New creates a loader for idx. Cancelling ctx ends all subscriptions.
func New(ctx context.Context, idx *geoindex.Index) *Loader {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Loader{
		idx:  idx,
		ctx:  ctx,
		cast: caster.New(ctx),
	}
}

// Subscribe returns a channel receiving a Progress message for every file.
// The channel is closed when Load returns. Subscribers have to drain their
// channel, as Load blocks on subscribers which fell behind by more than
// capacity messages. Subscribing after Load has returned yields a closed
// channel.
func (l *Loader) Subscribe(capacity uint) <-chan interface{} {
	ch, ok := l.cast.Sub(l.ctx, capacity)
	if !ok {
		tracer().Infof("loader: subscription after loading has finished")
		closed := make(chan interface{})
		close(closed)
		return closed
	}
	return ch
}

type parsed struct {
	features []geoindex.Feature
	err      error
}

// Load parses all files concurrently and adds their features to the index,
// file by file in the order given. It stops at the first failing file and
// returns the number of features added so far.
func (l *Loader) Load(paths ...string) (int, error) {
	defer l.cast.Close()
	results := make([]chan parsed, len(paths))
	for i, path := range paths {
		results[i] = make(chan parsed, 1)
		go func(ch chan<- parsed) {
			features, err := ParseFile(path)
			ch <- parsed{features: features, err: err}
		}(results[i])
	}
	total := 0
	for i, path := range paths {
		var p parsed
		select {
		case p = <-results[i]:
		case <-l.ctx.Done():
			return total, l.ctx.Err()
		}
		n, err := 0, p.err
		if err == nil {
			n, err = l.idx.AddAll(p.features)
		}
		total += n
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		}
		tracer().Debugf("loader: %s: %d features", path, n)
		l.cast.Pub(Progress{Path: path, Features: n, Err: err})
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ParseFile reads the features of a file, which must be a regular file.
// Files ending in .json or .geojson are read as GeoJSON feature collections,
// all others as point/box files.
func ParseFile(path string) ([]geoindex.Feature, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".geojson":
		return geoindex.ReadGeoJSON(file)
	}
	return ReadFeatures(file)
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", name)
	}
	return os.Open(name)
}
