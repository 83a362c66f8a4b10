package workload

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures no goroutines leak from the writer.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWriteHeaderAndLineCount(t *testing.T) {
	var buf bytes.Buffer
	g := New(4, 0, rand.New(rand.NewSource(11)))

	if err := Write(&buf, g, 5); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines (header + 5 operations), got %d", len(lines))
	}
	if lines[0] != "4 5" {
		t.Errorf("header = %q, want %q", lines[0], "4 5")
	}

	// With a zero query percentage every operation line is an add.
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != LabelAdd {
			t.Errorf("line %d = %q, want an add line with three fields", i+1, line)
		}
	}
}

func TestWriteAllQueries(t *testing.T) {
	var buf bytes.Buffer
	g := New(9, 100, rand.New(rand.NewSource(3)))

	if err := Write(&buf, g, 8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != LabelQuery {
			t.Errorf("line %q, want a query line with two fields", line)
		}
	}
}

func TestWriteSameSeedSameBytes(t *testing.T) {
	var first, second bytes.Buffer

	if err := Write(&first, New(256, 20, rand.New(rand.NewSource(42))), 1000); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := Write(&second, New(256, 20, rand.New(rand.NewSource(42))), 1000); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("workloads from identical seeds differ")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")

	if err := WriteFile(path, New(32, 20, rand.New(rand.NewSource(5))), 50); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	header, _, _ := strings.Cut(string(data), "\n")
	if header != "32 50" {
		t.Errorf("header = %q, want %q", header, "32 50")
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("file does not end with a newline")
	}
}

func TestWriteFileCreateError(t *testing.T) {
	// A path whose parent directory does not exist cannot be created.
	path := filepath.Join(t.TempDir(), "missing", "input.txt")

	err := WriteFile(path, New(8, 20, rand.New(rand.NewSource(1))), 10)
	if err == nil {
		t.Fatal("expected an error for an uncreatable path")
	}
	if !strings.Contains(err.Error(), "failed to create output file") {
		t.Errorf("error = %v, want a create failure", err)
	}
}
