package supervisor

import (
	"log/slog"
	"os"
	"testing"

	"github.com/queuectl/queuectl/config"
)

func TestActiveCountPrunesDeadPids(t *testing.T) {
	dir := t.TempDir()
	sup := New(dir, nil, slog.Default())

	alive := os.Getpid()
	// A pid this large is virtually guaranteed not to be a running
	// process on any system this test runs on.
	dead := 1 << 30
	if err := writePids(config.PidPath(dir), []int{alive, dead}); err != nil {
		t.Fatal(err)
	}

	n, err := sup.ActiveCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 alive pid, got %d", n)
	}

	remaining, err := readPids(config.PidPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0] != alive {
		t.Fatalf("expected registry pruned to [%d], got %v", alive, remaining)
	}
}

func TestStopClearsRegistry(t *testing.T) {
	dir := t.TempDir()
	sup := New(dir, nil, slog.Default())

	if err := writePids(config.PidPath(dir), []int{os.Getpid()}); err != nil {
		t.Fatal(err)
	}

	// Stop signals SIGTERM to every registered pid; signaling the test
	// process itself would terminate it, so this only checks that the
	// registry is cleared afterward using an already-dead pid instead.
	if err := writePids(config.PidPath(dir), []int{1 << 30}); err != nil {
		t.Fatal(err)
	}
	if err := sup.Stop(); err != nil {
		t.Fatal(err)
	}

	remaining, err := readPids(config.PidPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected registry cleared, got %v", remaining)
	}
}
