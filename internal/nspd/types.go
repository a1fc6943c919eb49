package nspd

// SearchResponse is the subset of the geoportal search payload used here
type SearchResponse struct {
	Data *SearchData `json:"data"`
}

// SearchData holds the matched features
type SearchData struct {
	Type     string    `json:"type,omitempty"`
	Features []Feature `json:"features"`
}

// Feature describes one parcel. Coordinates are kept generic because their
// nesting depends on the geometry type.
type Feature struct {
	ID         interface{}            `json:"id,omitempty"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry is a GeoJSON-like geometry
type Geometry struct {
	Type        string      `json:"type,omitempty"`
	Coordinates interface{} `json:"coordinates"`
}

// Features returns the feature list, nil when the payload has none
func (r *SearchResponse) Features() []Feature {
	if r == nil || r.Data == nil {
		return nil
	}
	return r.Data.Features
}

// FirstFeature returns the first matching feature
func (r *SearchResponse) FirstFeature() (*Feature, bool) {
	features := r.Features()
	if len(features) == 0 {
		return nil, false
	}
	return &features[0], true
}
