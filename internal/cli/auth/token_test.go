package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToken_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	if err := SaveToken(path, "abc.def.ghi"); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	got, err := LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if got != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", got)
	}

	if err := ClearToken(path); err != nil {
		t.Fatalf("ClearToken failed: %v", err)
	}
	if _, err := LoadToken(path); err == nil {
		t.Fatalf("LoadToken must fail after ClearToken")
	}
	// повторный ClearToken по отсутствующему файлу — не ошибка
	if err := ClearToken(path); err != nil {
		t.Fatalf("ClearToken on missing file: %v", err)
	}
}

func TestToken_LoadTrimsTrailingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("tok-123\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if got != "tok-123" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
}

func TestToken_EmptyPath(t *testing.T) {
	if err := SaveToken("", "x"); err == nil {
		t.Fatalf("SaveToken must reject empty path")
	}
	if _, err := LoadToken(""); err == nil {
		t.Fatalf("LoadToken must reject empty path")
	}
}
