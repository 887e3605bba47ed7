package glframe_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/glframe"
	"github.com/gogpu/glframe/internal/gltest"
)

func TestRegisterDevice(t *testing.T) {
	t.Cleanup(func() { glframe.UnregisterDevice("fake") })

	dev := gltest.NewDevice()
	glframe.RegisterDevice("fake", func() (glframe.Device, error) {
		return dev, nil
	})

	if !slices.Contains(glframe.AvailableDevices(), "fake") {
		t.Fatalf("AvailableDevices() = %v, want to contain fake", glframe.AvailableDevices())
	}

	got, err := glframe.NewDevice("fake")
	if err != nil {
		t.Fatalf("NewDevice(fake) = %v", err)
	}
	if got != glframe.Device(dev) {
		t.Error("NewDevice returned a different device than the factory")
	}
}

func TestNewDevice_Unregistered(t *testing.T) {
	_, err := glframe.NewDevice("no-such-backend")
	if err == nil {
		t.Fatal("NewDevice() succeeded for an unregistered backend")
	}
}

func TestDefaultDevice_FallsBack(t *testing.T) {
	t.Cleanup(func() { glframe.UnregisterDevice("only") })

	// No "opengl" backend is linked into the test binary; any registered
	// backend serves as the default.
	glframe.RegisterDevice("only", func() (glframe.Device, error) {
		return gltest.NewDevice(), nil
	})

	dev, err := glframe.DefaultDevice()
	if err != nil {
		t.Fatalf("DefaultDevice() = %v", err)
	}
	if dev == nil {
		t.Fatal("DefaultDevice() returned nil device")
	}
}

func TestDefaultDevice_NoneRegistered(t *testing.T) {
	if len(glframe.AvailableDevices()) != 0 {
		t.Skip("another test left a backend registered")
	}
	if _, err := glframe.DefaultDevice(); err == nil {
		t.Fatal("DefaultDevice() succeeded with nothing registered")
	}
}

func TestRegisterDevice_FactoryError(t *testing.T) {
	t.Cleanup(func() { glframe.UnregisterDevice("failing") })

	factoryErr := errors.New("no current context")
	glframe.RegisterDevice("failing", func() (glframe.Device, error) {
		return nil, factoryErr
	})

	if _, err := glframe.NewDevice("failing"); !errors.Is(err, factoryErr) {
		t.Errorf("NewDevice(failing) = %v, want the factory error", err)
	}
}
