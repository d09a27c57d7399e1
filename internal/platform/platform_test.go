package platform

import (
	"errors"
	"net"
	"path/filepath"
	"strconv"
	"testing"
)

func TestLockAddressIsStableAndInRange(t *testing.T) {
	first := LockAddress("Pomodoro")
	if first != LockAddress("Pomodoro") {
		t.Fatal("lock address must be deterministic")
	}

	for _, name := range []string{"Pomodoro", "", "another app", "Pomodoro-dev"} {
		_, portText, err := net.SplitHostPort(LockAddress(name))
		if err != nil {
			t.Fatalf("split %q: %v", name, err)
		}
		port, err := strconv.Atoi(portText)
		if err != nil {
			t.Fatalf("port %q: %v", portText, err)
		}
		if port < minLockPort || port > maxLockPort {
			t.Fatalf("%q: port %d out of range", name, port)
		}
	}
}

func TestSingleInstance(t *testing.T) {
	name := "pomodoro-single-instance-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("lock port unavailable: %v", err)
	}

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("second release: %v", err)
	}

	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	_ = again.Release()
}

func TestSettingsPath(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", configHome)
	t.Setenv("APPDATA", configHome)

	path, err := SettingsPath("Pomodoro")
	if err != nil {
		t.Fatalf("settings path: %v", err)
	}
	if filepath.Base(path) != "settings.yaml" || filepath.Base(filepath.Dir(path)) != "Pomodoro" {
		t.Fatalf("unexpected path %q", path)
	}
}
