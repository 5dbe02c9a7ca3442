package geoindex

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

// ReadGeoJSON reads a GeoJSON feature collection from r. Features without
// an ID are named after their position in the collection ("feature-<n>").
func ReadGeoJSON(r io.Reader) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geoindex: reading GeoJSON: %w", err)
	}
	features := make([]Feature, len(fc.Features))
	for i, gf := range fc.Features {
		features[i] = Feature{
			ID:         featureID(gf, i),
			Geometry:   gf.Geometry,
			Properties: gf.Properties,
		}
	}
	return features, nil
}

// LoadGeoJSON reads a GeoJSON feature collection from r and adds all of its
// features. It returns the number of features added; on error, features
// added before the failing one stay in the index.
func (idx *Index) LoadGeoJSON(r io.Reader) (int, error) {
	features, err := ReadGeoJSON(r)
	if err != nil {
		return 0, err
	}
	n, err := idx.AddAll(features)
	if err == nil {
		T().Infof("geoindex: loaded %d GeoJSON features", n)
	}
	return n, err
}

func featureID(gf *geojson.Feature, i int) string {
	switch id := gf.ID.(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case nil:
	default:
		return fmt.Sprint(id)
	}
	return "feature-" + strconv.Itoa(i)
}

// WriteGeoJSON writes all features as a GeoJSON feature collection, ordered
// by ID.
func (idx *Index) WriteGeoJSON(w io.Writer) error {
	ids := make([]string, 0, len(idx.byID))
	for id := range idx.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fc := geojson.NewFeatureCollection()
	for _, id := range ids {
		f := idx.byID[id].feature
		gf := geojson.NewFeature(f.Geometry)
		gf.ID = f.ID
		if f.Properties != nil {
			gf.Properties = f.Properties
		}
		fc.Append(gf)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
