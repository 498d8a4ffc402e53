package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// Shebang is the interpreter line prepended to recipes by WriteRecipe
const Shebang = "#!/bin/sh\n"

// RecipeSearchPath is the PATH tests hand to recipes
const RecipeSearchPath = "/usr/bin:/bin"

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// WriteRecipe writes an executable shell dofile named name into dir.
// body is the script without its interpreter line.
func WriteRecipe(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := CreateFile(t, dir, name, Shebang+body+"\n")
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("Failed to make %s executable: %v", path, err)
	}
	return path
}

// ReadFile returns the content of dir/name, failing the test on error.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// FileExists reports whether dir/name exists.
func FileExists(t *testing.T, dir, name string) bool {
	t.Helper()

	_, err := os.Lstat(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("Failed to stat %s: %v", name, err)
	}
	return err == nil
}

// StagingFiles lists the staging files left in dir, sorted.
func StagingFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir, err)
	}

	var found []string
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp.") {
			found = append(found, entry.Name())
		}
	}
	sort.Strings(found)
	return found
}

// Chdir switches the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
}
