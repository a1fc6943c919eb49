package services

import (
	"context"
	"errors"

	"cadastral-lookup-api/internal/models"
	"cadastral-lookup-api/internal/nspd"
)

// ErrParcelNotFound is returned when the provider has no feature for the number
var ErrParcelNotFound = errors.New("parcel not found")

// ParcelService defines the interface for parcel lookup operations
type ParcelService interface {
	// LookupParcel fetches a parcel from the provider. Failures are returned
	// unmasked; callers decide how to report them.
	LookupParcel(ctx context.Context, cadastralNumber string) (*models.ParcelRecord, error)
}

// ParcelSearcher is the upstream dependency of the parcel service
type ParcelSearcher interface {
	Search(ctx context.Context, cadastralNumber string) (*nspd.SearchResponse, error)
}
