package lambda

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cadastral-lookup-api/internal/config"
	"cadastral-lookup-api/pkg/server"
)

// ConnectionManager keeps the service container alive across warm invocations
// so the upstream HTTP client's connection pool is reused.
type ConnectionManager struct {
	container   *server.Container
	coldStart   time.Time
	lastUsed    time.Time
	invocations int64
	mu          sync.RWMutex
	initialized bool
	initErr     error
	initOnce    sync.Once
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize builds the container once. Later calls return the first result.
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.initOnce.Do(func() {
		cm.mu.Lock()
		defer cm.mu.Unlock()

		container, err := server.NewContainer(cfg)
		if err != nil {
			cm.initErr = err
			return
		}

		cm.container = container
		cm.coldStart = time.Now()
		cm.lastUsed = cm.coldStart
		cm.initialized = true

		logrus.WithFields(logrus.Fields{
			"deployment_mode": config.GetDeploymentMode(),
			"function_name":   config.GetServerlessConfig().FunctionName,
			"policy":          cfg.Policy,
		}).Info("Container initialized")
	})

	return cm.initErr
}

// Container returns the initialized container and records the invocation
func (cm *ConnectionManager) Container() (*server.Container, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.initialized || cm.container == nil {
		return nil, false
	}
	cm.lastUsed = time.Now()
	cm.invocations++
	return cm.container, true
}

// IsWarm reports whether a previous invocation already used the container
func (cm *ConnectionManager) IsWarm() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.invocations > 1
}

// Stats returns invocation counters for logging
func (cm *ConnectionManager) Stats() (invocations int64, uptime time.Duration) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if !cm.initialized {
		return 0, 0
	}
	return cm.invocations, time.Since(cm.coldStart)
}

// Cleanup releases the container's resources
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
