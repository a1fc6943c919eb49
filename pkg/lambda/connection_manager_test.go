package lambda

import (
	"testing"
	"time"

	"cadastral-lookup-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Policy:      config.PolicyStrict,
		Upstream: config.UpstreamConfig{
			URLTemplate: config.DefaultURLTemplate,
			Timeout:     time.Second,
			UserAgent:   config.DefaultUserAgent,
		},
	}
}

func TestConnectionManagerLifecycle(t *testing.T) {
	cm := &ConnectionManager{}

	if _, ok := cm.Container(); ok {
		t.Fatal("Expected no container before initialization")
	}

	if err := cm.Initialize(testConfig()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	first, ok := cm.Container()
	if !ok || first == nil {
		t.Fatal("Expected container after initialization")
	}
	if cm.IsWarm() {
		t.Error("Expected first invocation to be cold")
	}

	second, _ := cm.Container()
	if second != first {
		t.Error("Expected the same container across invocations")
	}
	if !cm.IsWarm() {
		t.Error("Expected second invocation to be warm")
	}

	invocations, _ := cm.Stats()
	if invocations != 2 {
		t.Errorf("Expected 2 invocations, got %d", invocations)
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if _, ok := cm.Container(); ok {
		t.Error("Expected no container after cleanup")
	}
}

func TestConnectionManagerInitializeError(t *testing.T) {
	cm := &ConnectionManager{}
	if err := cm.Initialize(nil); err == nil {
		t.Fatal("Expected error for nil configuration")
	}
	// The first result sticks
	if err := cm.Initialize(testConfig()); err == nil {
		t.Error("Expected initialization error to be remembered")
	}
}

func TestGetConnectionManagerSingleton(t *testing.T) {
	if GetConnectionManager() != GetConnectionManager() {
		t.Error("Expected a single global connection manager")
	}
}
