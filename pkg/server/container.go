package server

import (
	"fmt"

	"cadastral-lookup-api/internal/config"
	"cadastral-lookup-api/internal/nspd"
	"cadastral-lookup-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	ParcelService services.ParcelService

	// Internal dependencies
	client   *nspd.Client
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	client := nspd.NewClient(cfg.Upstream)

	serviceContainer, err := services.NewServiceContainer(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:        cfg,
		ParcelService: serviceContainer.ParcelService,
		client:        client,
		services:      serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
	return nil
}
