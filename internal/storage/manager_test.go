// manager_test.go - Tests for the upload store
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docmanager/backend/internal/models"
)

func createTestStore(t *testing.T) *LocalStore {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestNewLocalStore(t *testing.T) {
	t.Run("creates upload directory", func(t *testing.T) {
		uploadDir := filepath.Join(t.TempDir(), "uploads")

		if _, err := NewLocalStore(uploadDir); err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}

		if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
			t.Error("Expected upload directory to be created")
		}
	})
}

func TestLocalStore_Save(t *testing.T) {
	t.Run("saves file from reader", func(t *testing.T) {
		store := createTestStore(t)

		content := "Patient: John Colby\n\nAll good."
		info, err := store.Save("patient.report", strings.NewReader(content))
		if err != nil {
			t.Fatalf("Failed to save file: %v", err)
		}

		if info.ID == "" {
			t.Error("Expected ID to be set")
		}
		if info.Name != "patient.report" {
			t.Errorf("Expected name 'patient.report', got %v", info.Name)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Expected size %d, got %d", len(content), info.Size)
		}
		if info.Status != models.FileStatusUploaded {
			t.Errorf("Expected status 'uploaded', got %v", info.Status)
		}
	})

	t.Run("keeps the extension on disk", func(t *testing.T) {
		store := createTestStore(t)

		info, err := store.Save("xray.jpg", strings.NewReader("\xff\xd8"))
		if err != nil {
			t.Fatalf("Failed to save file: %v", err)
		}

		path, err := store.GetFilePath(info.ID)
		if err != nil {
			t.Fatalf("Failed to get path: %v", err)
		}
		if filepath.Base(path) != "xray.jpg" {
			t.Errorf("Expected file name xray.jpg, got %s", filepath.Base(path))
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read saved file: %v", err)
		}
		if string(data) != "\xff\xd8" {
			t.Errorf("Unexpected content %q", data)
		}
	})

	t.Run("strips directories from the name", func(t *testing.T) {
		store := createTestStore(t)

		info, err := store.Save("../../etc/evil.letter", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Failed to save file: %v", err)
		}
		if info.Name != "evil.letter" {
			t.Errorf("Expected name 'evil.letter', got %v", info.Name)
		}

		info, err = store.Save(`C:\docs\win.invoice`, strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Failed to save file: %v", err)
		}
		if info.Name != "win.invoice" {
			t.Errorf("Expected name 'win.invoice', got %v", info.Name)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		store := createTestStore(t)

		for _, name := range []string{"", "..", "/"} {
			if _, err := store.Save(name, strings.NewReader("x")); err == nil {
				t.Errorf("Expected error for name %q", name)
			}
		}
	})
}

func TestLocalStore_Get(t *testing.T) {
	t.Run("gets existing file", func(t *testing.T) {
		store := createTestStore(t)
		saved, _ := store.Save("a.letter", strings.NewReader("x"))

		info, err := store.Get(saved.ID)
		if err != nil {
			t.Fatalf("Failed to get file: %v", err)
		}
		if info.Name != "a.letter" {
			t.Errorf("Expected name a.letter, got %s", info.Name)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		store := createTestStore(t)

		_, err := store.Get("missing")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestLocalStore_List(t *testing.T) {
	t.Run("sorts by upload time descending and limits", func(t *testing.T) {
		store := createTestStore(t)

		for _, name := range []string{"1.letter", "2.letter", "3.letter"} {
			if _, err := store.Save(name, strings.NewReader(name)); err != nil {
				t.Fatalf("Failed to save: %v", err)
			}
			time.Sleep(5 * time.Millisecond)
		}

		files, err := store.List(2)
		if err != nil {
			t.Fatalf("Failed to list files: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("Expected 2 files, got %d", len(files))
		}
		if files[0].Name != "3.letter" || files[1].Name != "2.letter" {
			t.Errorf("Unexpected order: %s, %s", files[0].Name, files[1].Name)
		}

		all, _ := store.List(0)
		if len(all) != 3 {
			t.Errorf("Expected 3 files without limit, got %d", len(all))
		}
	})
}

func TestLocalStore_Delete(t *testing.T) {
	t.Run("deletes existing file", func(t *testing.T) {
		store := createTestStore(t)
		info, _ := store.Save("a.report", strings.NewReader("x"))
		path, _ := store.GetFilePath(info.ID)

		if err := store.Delete(info.ID); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("Expected physical file to be removed")
		}
		if _, err := store.Get(info.ID); err == nil {
			t.Error("Expected metadata to be removed")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		store := createTestStore(t)

		if err := store.Delete("missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestLocalStore_SetStatus(t *testing.T) {
	store := createTestStore(t)
	info, _ := store.Save("a.report", strings.NewReader("x"))

	if err := store.SetStatus(info.ID, models.FileStatusImported); err != nil {
		t.Fatalf("Failed to set status: %v", err)
	}
	got, _ := store.Get(info.ID)
	if got.Status != models.FileStatusImported {
		t.Errorf("Expected status imported, got %s", got.Status)
	}

	if err := store.SetStatus("missing", models.FileStatusImported); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLocalStore_ConcurrentAccess(t *testing.T) {
	store := createTestStore(t)

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(n int) {
			content := "Content " + string(rune('0'+n))
			if _, err := store.Save("file.report", strings.NewReader(content)); err != nil {
				t.Errorf("Failed to save file: %v", err)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	files, err := store.List(20)
	if err != nil {
		t.Fatalf("Failed to list files: %v", err)
	}
	if len(files) != 10 {
		t.Errorf("Expected 10 files, got %d", len(files))
	}
}

// failingReader fails on the first read.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestLocalStore_ErrorHandling(t *testing.T) {
	store := createTestStore(t)

	if _, err := store.Save("test.letter", failingReader{}); err == nil {
		t.Error("Expected error when reader fails")
	}

	files, _ := store.List(0)
	if len(files) != 0 {
		t.Errorf("Expected no files after failed save, got %d", len(files))
	}
}
