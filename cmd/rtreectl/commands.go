package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/geoindex"
	"github.com/npillmayer/geoindex/loader"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
)

func newRandomCmd(s *settings) *cobra.Command {
	var (
		seed   int64
		extent float64
		boxes  bool
	)
	cmd := &cobra.Command{
		Use:   "random N",
		Short: "Build an index from N random points or boxes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid number of features %q", args[0])
			}
			idx, err := s.newIndex()
			if err != nil {
				return err
			}
			r := rand.New(rand.NewSource(seed))
			for i := range n {
				x, y := r.Float64()*extent, r.Float64()*extent
				var g orb.Geometry = orb.Point{x, y}
				if boxes {
					w, h := r.Float64()*extent/100, r.Float64()*extent/100
					g = orb.Bound{Min: orb.Point{x, y}, Max: orb.Point{x + w, y + h}}
				}
				if err := idx.Add(geoindex.Feature{ID: "R" + strconv.Itoa(i), Geometry: g}); err != nil {
					return err
				}
			}
			return s.report(cmd.OutOrStdout(), idx)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&extent, "extent", 1000, "side length of the square holding the features")
	cmd.Flags().BoolVar(&boxes, "boxes", false, "generate boxes instead of points")
	return cmd
}

func newLoadCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE...",
		Short: "Build an index from point/box files or GeoJSON feature collections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := s.newIndex()
			if err != nil {
				return err
			}
			if err := loadFiles(cmd, idx, args...); err != nil {
				return err
			}
			return s.report(cmd.OutOrStdout(), idx)
		},
	}
}

func newQueryCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "query FILE X0 Y0 X1 Y1",
		Short: "Print the IDs of all features intersecting a window",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseBound(args[1:])
			if err != nil {
				return err
			}
			idx, err := s.newIndex()
			if err != nil {
				return err
			}
			if _, err := loader.New(cmd.Context(), idx).Load(args[0]); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			hits := idx.Search(window)
			for _, f := range hits {
				fmt.Fprintln(w, f.ID)
			}
			color.New(color.Faint).Fprintf(w, "%d of %d features intersect %v\n", len(hits), idx.Len(), window)
			return nil
		},
	}
}

// loadFiles loads files into idx and prints a line per file to the
// command's error output.
func loadFiles(cmd *cobra.Command, idx *geoindex.Index, paths ...string) error {
	ld := loader.New(cmd.Context(), idx)
	progress := ld.Subscribe(uint(len(paths)))
	done := make(chan struct{})
	go func() {
		defer close(done)
		w := cmd.ErrOrStderr()
		for m := range progress {
			p := m.(loader.Progress)
			if p.Err != nil {
				color.New(color.FgRed).Fprintf(w, "%s: %v\n", p.Path, p.Err)
				continue
			}
			fmt.Fprintf(w, "%s: %d features\n", p.Path, p.Features)
		}
	}()
	_, err := ld.Load(paths...)
	<-done
	return err
}

// report prints statistics and the result of the invariant check, plus the
// tree structure if requested.
func (s *settings) report(w io.Writer, idx *geoindex.Index) error {
	if s.dump {
		if err := idx.Dump(w); err != nil {
			return err
		}
	}
	if s.dot != "" {
		if err := writeDot(s.dot, idx); err != nil {
			return err
		}
	}
	stats := idx.Stats()
	label := color.New(color.FgCyan)
	label.Fprint(w, "features:    ")
	fmt.Fprintln(w, stats.Values)
	label.Fprint(w, "height:      ")
	fmt.Fprintln(w, len(stats.NodesPerLevel))
	label.Fprint(w, "leaves:      ")
	fmt.Fprintln(w, stats.Leaves)
	label.Fprint(w, "inner nodes: ")
	fmt.Fprintln(w, stats.InnerNodes)
	for level, n := range stats.NodesPerLevel {
		label.Fprintf(w, "  level %d:   ", level)
		fmt.Fprintln(w, n)
	}
	if err := idx.Check(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(w, "check failed: %v\n", err)
		return err
	}
	color.New(color.FgGreen).Fprintln(w, "check ok")
	return nil
}

func writeDot(path string, idx *geoindex.Index) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := idx.ToDot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
