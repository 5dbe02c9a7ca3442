package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geoindex"
	"github.com/npillmayer/geoindex/rtree"
	"github.com/npillmayer/schuko/tracing"
)

func (s *settings) options() (geoindex.Options, error) {
	splitter, err := splitterFor(s.split)
	if err != nil {
		return geoindex.Options{}, err
	}
	chooser, err := chooserFor(s.choose)
	if err != nil {
		return geoindex.Options{}, err
	}
	return geoindex.Options{
		Parameters: rtree.Parameters{MaxElements: s.maxElements, MinElements: s.minElements},
		Chooser:    chooser,
		Splitter:   splitter,
	}, nil
}

func splitterFor(name string) (rtree.Redistributor, error) {
	switch strings.ToLower(name) {
	case "linear":
		return rtree.Linear{}, nil
	case "quadratic", "":
		return rtree.Quadratic{}, nil
	case "rstar", "r*":
		return rtree.RStar{}, nil
	}
	return nil, fmt.Errorf("unknown split policy %q", name)
}

func chooserFor(name string) (rtree.ChooseNextNode, error) {
	switch strings.ToLower(name) {
	case "content", "":
		return rtree.ContentDiff{}, nil
	case "overlap":
		return rtree.MinOverlap{}, nil
	}
	return nil, fmt.Errorf("unknown choose policy %q", name)
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", name)
}
