package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "dir")

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestFileSize(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "file.bin")
	if err := os.WriteFile(path, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	size, ok := FileSize(path)
	if !ok {
		t.Fatal("expected size for existing file")
	}
	if size != 5 {
		t.Errorf("expected size 5, got %d", size)
	}

	if _, ok := FileSize(filepath.Join(tempDir, "missing.bin")); ok {
		t.Error("missing file should report no size")
	}

	if _, ok := FileSize(tempDir); ok {
		t.Error("directory should report no size")
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}
	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}
