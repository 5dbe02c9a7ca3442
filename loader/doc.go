/*
Package loader reads feature files and adds their contents to a geoindex.Index.

Two formats are understood: GeoJSON feature collections (files ending in
.json or .geojson) and plain point/box files with one feature per line.
Files are parsed concurrently, while features are added to the index by a
single goroutine, in the order the files were given. Clients may subscribe
to progress messages, which are broadcast once per file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package loader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geoindex'
func tracer() tracing.Trace {
	return tracing.Select("geoindex")
}
