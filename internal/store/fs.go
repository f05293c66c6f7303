package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileSystem is the slice of the OS the store touches. Tests swap it to simulate failures.
type FileSystem interface {
	MkdirAll(path string) error
	RemoveAll(path string) error
	Remove(path string) error
	Exists(path string) bool
	Copy(src, dst string) error
}

type osFileSystem struct{}

// OSFileSystem is the real filesystem.
func OSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (osFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (osFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (osFileSystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// Copy writes src to dst, refusing to overwrite an existing dst.
func (osFileSystem) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy data: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	return nil
}

// uniqueName returns name, or name with "-1", "-2", ... inserted before the extension
// (appended when there is none), whichever is first free in dir.
func uniqueName(fsys FileSystem, dir, name string) string {
	if !fsys.Exists(filepath.Join(dir, name)) {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base, ext = name, ""
	}

	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i) + ext
		if !fsys.Exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

// folderName turns a project name into a single safe path element.
func folderName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}
		return r
	}, strings.TrimSpace(name))

	if clean == "" || clean == "." || clean == ".." {
		return "project"
	}
	return clean
}

// fileType is the media-type tag for a stored file name: its lowercase extension without the dot.
func fileType(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
