package glframe

import (
	"fmt"
	"sync"
)

// DeviceFactory creates a new device instance bound to the current
// context. Factories return an error when no context is current or the
// driver cannot be initialized.
type DeviceFactory func() (Device, error)

// registry holds registered device backends.
var (
	registryMu sync.RWMutex
	devices    = make(map[string]DeviceFactory)

	// defaultBackend is the name DefaultDevice tries first.
	defaultBackend = "opengl"
)

// RegisterDevice registers a device factory under the given name.
// This is typically called from init() functions in backend packages.
// Registering an existing name replaces the previous factory.
func RegisterDevice(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	devices[name] = factory
}

// UnregisterDevice removes a backend from the registry.
// This is useful for testing.
func UnregisterDevice(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(devices, name)
}

// AvailableDevices returns the names of all registered backends.
func AvailableDevices() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	return names
}

// NewDevice creates a device by backend name.
func NewDevice(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := devices[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("glframe: no device backend registered as %q", name)
	}
	return factory()
}

// DefaultDevice creates a device from the default backend, falling back
// to any registered backend when the default is absent.
func DefaultDevice() (Device, error) {
	registryMu.RLock()
	factory, ok := devices[defaultBackend]
	if !ok {
		for _, f := range devices {
			factory = f
			ok = true
			break
		}
	}
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("glframe: no device backend registered")
	}
	return factory()
}
