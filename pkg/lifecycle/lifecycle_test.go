package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/expense-manager/pkg/lifecycle"
)

func TestNew_NotReady(t *testing.T) {
	lc := lifecycle.New()

	if lc.Ready() {
		t.Error("Ready() = true, want false for new coordinator")
	}

	select {
	case <-lc.Context().Done():
		t.Error("context should not be cancelled")
	default:
	}
}

func TestCoordinator_StartupHooks(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(5 * time.Millisecond)
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if count.Load() != 3 {
		t.Errorf("startup hooks run = %d, want 3", count.Load())
	}

	var checker lifecycle.ReadinessChecker = lc
	if !checker.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_ShutdownHooks(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if count.Load() != 3 {
		t.Errorf("shutdown hooks run = %d, want 3", count.Load())
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

func TestCoordinator_Shutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	if err := lc.Shutdown(50 * time.Millisecond); err == nil {
		t.Error("Shutdown() should return timeout error")
	}
}

func TestCoordinator_Shutdown_ClearsReady(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if lc.Ready() {
		t.Error("Ready() = true after shutdown, want false")
	}
}

func TestCoordinator_ConcurrentReady(t *testing.T) {
	lc := lifecycle.New()

	done := make(chan struct{})
	go func() {
		for range 100 {
			_ = lc.Ready()
		}
		close(done)
	}()

	lc.WaitForStartup()
	<-done
}
