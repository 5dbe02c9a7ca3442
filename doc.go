/*
Package geoindex maintains an in-memory spatial index of geographic features.

Features pair an identifier with an orb geometry. They are kept in an R-tree
(package rtree) keyed by the bounding box of their geometry, which makes
window queries ("which features touch this area?") cheap even for large
collections.

	idx, err := geoindex.NewIndex(geoindex.Options{})
	...
	idx.Add(geoindex.Feature{ID: "museum", Geometry: orb.Point{16.36, 48.20}})
	for _, f := range idx.Search(orb.Bound{Min: orb.Point{16, 48}, Max: orb.Point{17, 49}}) {
		fmt.Println(f.ID)
	}

Features may be loaded in bulk from GeoJSON feature collections.

Package geom holds the bounding box arithmetic, package rtree the index
structure with its pluggable insertion policies.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package geoindex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the geoindex module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrDuplicateID is flagged when a feature is added under an ID already
// present in the index.
const ErrDuplicateID = IndexError("duplicate feature ID")

// ErrUnknownID is flagged when a feature ID is not present in the index.
const ErrUnknownID = IndexError("unknown feature ID")

// ErrNoGeometry is flagged for features without a geometry or with an empty one.
const ErrNoGeometry = IndexError("feature has no geometry")
