package services

import (
	"cadastral-lookup-api/internal/models"
)

// Heuristic point count constants
const (
	// DefaultEstimatedPoints is used when the number has fewer than four segments
	DefaultEstimatedPoints = 8
	estimateBase           = 4
	estimateSpread         = 8
	minCadastralSegments   = 4
)

// EstimatePointsCount guesses a polygon point count from the cadastral number.
// For a well-formed number the last digit of the parcel segment selects a value
// in [8, 15]; anything else yields DefaultEstimatedPoints.
func EstimatePointsCount(cadastralNumber string) int {
	segments := models.SplitCadastralNumber(cadastralNumber)
	if len(segments) < minCadastralSegments {
		return DefaultEstimatedPoints
	}

	digit := 0
	last := segments[len(segments)-1]
	if n := len(last); n > 0 {
		if c := last[n-1]; c >= '0' && c <= '9' {
			digit = int(c - '0')
		}
	}

	return estimateBase + digit%estimateSpread + estimateBase
}

// EstimateParcel builds a placeholder record for a number the provider could not resolve
func EstimateParcel(cadastralNumber string) *models.ParcelRecord {
	return models.NewEstimatedParcel(cadastralNumber, EstimatePointsCount(cadastralNumber))
}
