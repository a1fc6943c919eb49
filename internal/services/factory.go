package services

import (
	"fmt"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	ParcelService ParcelService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(searcher ParcelSearcher) (*ServiceContainer, error) {
	if searcher == nil {
		return nil, fmt.Errorf("parcel searcher cannot be nil")
	}

	return &ServiceContainer{
		ParcelService: NewParcelService(searcher),
	}, nil
}
