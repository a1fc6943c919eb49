package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"cadastral-lookup-api/internal/models"
)

// parcelService implements ParcelService
type parcelService struct {
	searcher ParcelSearcher
}

// NewParcelService creates a new parcel service
func NewParcelService(searcher ParcelSearcher) ParcelService {
	return &parcelService{
		searcher: searcher,
	}
}

// LookupParcel fetches the first matching feature and maps it to a record
func (s *parcelService) LookupParcel(ctx context.Context, cadastralNumber string) (*models.ParcelRecord, error) {
	if cadastralNumber == "" {
		return nil, models.ErrMissingCadastralNumber
	}

	resp, err := s.searcher.Search(ctx, cadastralNumber)
	if err != nil {
		return nil, err
	}

	feature, ok := resp.FirstFeature()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrParcelNotFound, cadastralNumber)
	}

	attrs := feature.Attributes()
	record := models.NewParcelRecord(
		cadastralNumber,
		feature.PointsCount(),
		attrs.Area,
		attrs.CadastralCost,
		attrs.Category,
		attrs.Address,
	)

	logrus.WithFields(logrus.Fields{
		"cadastral_number": cadastralNumber,
		"points_count":     record.PointsCount,
		"geometry_type":    feature.Geometry.Type,
	}).Debug("Parcel mapped")

	return record, nil
}
