package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadHosts(t *testing.T) {
	t.Run("hosts with content", func(t *testing.T) {
		root := t.TempDir()

		mustWrite(t, filepath.Join(root, "a.test", "index.html"), "hello")
		mustWrite(t, filepath.Join(root, "a.test", "docs", "index.html"), "docs!")
		mustWrite(t, filepath.Join(root, "b.test", "readme.txt"), "abc")
		mustWrite(t, filepath.Join(root, "404.html"), "missing")

		hosts, err := LoadHosts(root)
		if err != nil {
			t.Fatalf("LoadHosts failed: %v", err)
		}

		if len(hosts) != 2 {
			t.Fatalf("Expected 2 hosts, got %d", len(hosts))
		}

		if hosts[0].Name != "a.test" || hosts[1].Name != "b.test" {
			t.Errorf("Expected a.test and b.test, got %s and %s", hosts[0].Name, hosts[1].Name)
		}

		if hosts[0].Files != 2 {
			t.Errorf("Expected 2 files for a.test, got %d", hosts[0].Files)
		}

		if hosts[0].Bytes != 10 {
			t.Errorf("Expected 10 bytes for a.test, got %d", hosts[0].Bytes)
		}

		if hosts[1].Path != filepath.Join(root, "b.test") {
			t.Errorf("Expected path %s, got %s", filepath.Join(root, "b.test"), hosts[1].Path)
		}
	})

	t.Run("empty root", func(t *testing.T) {
		hosts, err := LoadHosts(t.TempDir())
		if err != nil {
			t.Fatalf("LoadHosts failed: %v", err)
		}

		if len(hosts) != 0 {
			t.Errorf("Expected 0 hosts, got %d", len(hosts))
		}
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := LoadHosts(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Error("Expected error for missing root, got nil")
		}
	})
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
}
