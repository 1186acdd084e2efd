package debug

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestStart_EmptyPathIsNoop(t *testing.T) {
	c, err := Start("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Enabled() {
		t.Fatalf("logging should stay disabled")
	}
	Log("dropped %d", 1)
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestStart_WritesToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	path := filepath.Join(t.TempDir(), "debug.log")

	c, err := Start(path)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !Enabled() {
		t.Fatalf("expected logging enabled")
	}
	Log("request %s p%d", "top", 2)
	LogTiming("fetch", 15*time.Millisecond)
	LogIf(false, "hidden")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if Enabled() {
		t.Fatalf("close should disable logging")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "request top p2") || !strings.Contains(out, "fetch took 15ms") {
		t.Fatalf("unexpected log content: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("LogIf(false) should not write")
	}
}

func TestClose_WhileCommandsStillLog(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	c, err := Start(filepath.Join(t.TempDir(), "debug.log"))
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				LogTiming("stories", time.Duration(i)*time.Millisecond)
				LogIf(true, "worker %d", i)
			}
		}()
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	wg.Wait()
	if Enabled() {
		t.Fatalf("close should disable logging")
	}
}
