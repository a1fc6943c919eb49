package models

import "math"

// ParcelRecord is the normalized summary of a land parcel returned to clients.
// Records are built once per request and never mutated; use the With* helpers
// to derive a modified copy.
type ParcelRecord struct {
	CadastralNumber string  `json:"cadastralNumber"`
	PointsCount     int     `json:"pointsCount"`
	Area            float64 `json:"area"`
	CadastralCost   float64 `json:"cadastralCost"`
	Category        string  `json:"category"`
	Address         string  `json:"address"`
	Estimated       bool    `json:"estimated,omitempty"`
}

// NewParcelRecord creates a record from upstream data, clamping negative numerics to zero
func NewParcelRecord(cadastralNumber string, pointsCount int, area, cadastralCost float64, category, address string) *ParcelRecord {
	return &ParcelRecord{
		CadastralNumber: cadastralNumber,
		PointsCount:     nonNegativeInt(pointsCount),
		Area:            nonNegative(area),
		CadastralCost:   nonNegative(cadastralCost),
		Category:        category,
		Address:         address,
	}
}

// NewEstimatedParcel creates a placeholder record used when real data is unavailable
func NewEstimatedParcel(cadastralNumber string, pointsCount int) *ParcelRecord {
	return &ParcelRecord{
		CadastralNumber: cadastralNumber,
		PointsCount:     nonNegativeInt(pointsCount),
		Estimated:       true,
	}
}

// WithEstimatedPoints returns a copy of the record with an estimated point count
func (p *ParcelRecord) WithEstimatedPoints(pointsCount int) *ParcelRecord {
	clone := *p
	clone.PointsCount = nonNegativeInt(pointsCount)
	clone.Estimated = true
	return &clone
}

// HasGeometry reports whether the record carries a real point count
func (p *ParcelRecord) HasGeometry() bool {
	return p.PointsCount > 0
}

// ErrorBody is the JSON body of every non-success response
type ErrorBody struct {
	Error           string `json:"error"`
	CadastralNumber string `json:"cadastralNumber,omitempty"`
}

// ParcelBody wraps a record with an optional diagnostic message. The message is
// only set when a best-effort lookup masked a failure.
type ParcelBody struct {
	*ParcelRecord
	Error string `json:"error,omitempty"`
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
