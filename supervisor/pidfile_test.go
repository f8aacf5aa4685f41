package supervisor

import (
	"path/filepath"
	"testing"
)

func TestReadPidsMissingFileReturnsEmpty(t *testing.T) {
	pids, err := readPids(filepath.Join(t.TempDir(), "workers.pid"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pids) != 0 {
		t.Fatalf("expected no pids, got %v", pids)
	}
}

func TestWritePidsThenReadPidsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workers.pid")
	want := []int{111, 222, 333}
	if err := writePids(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := readPids(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestWritePidsEmptySliceLeavesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workers.pid")
	if err := writePids(path, []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := writePids(path, nil); err != nil {
		t.Fatal(err)
	}
	got, err := readPids(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty registry, got %v", got)
	}
}
