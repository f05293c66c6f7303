package executor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	exec := New()
	out, err := exec.Execute(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want %q", out, "hello")
	}
}

func TestExecuteIncludesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	exec := New()
	_, err := exec.Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail for non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should contain stderr", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := New()
	out, err := exec.ExecuteInDir(context.Background(), dir, "sh", "-c", "ls")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if !strings.Contains(out, "marker.txt") {
		t.Errorf("ExecuteInDir() = %q, want listing with marker.txt", out)
	}
}

func TestLookPathMissing(t *testing.T) {
	exec := New()
	if _, err := exec.LookPath("definitely-not-a-real-binary-raven"); err == nil {
		t.Error("LookPath() should fail for missing binary")
	}
}
