package token

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func newTestFileBackend(t *testing.T, profileName string) Backend {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	b, err := newFile(profileName)
	if err != nil {
		t.Fatalf("newFile failed: %v", err)
	}
	return b
}

func TestFileBackendPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	b, err := newFile("work")
	if err != nil {
		t.Fatalf("newFile failed: %v", err)
	}
	want := filepath.Join(dir, "slafling", "tokens", "work")
	if got := b.Location().Path; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	b, err = newFile("")
	if err != nil {
		t.Fatalf("newFile failed: %v", err)
	}
	want = filepath.Join(dir, "slafling", "tokens", "default")
	if got := b.Location().Path; got != want {
		t.Errorf("default path = %q, want %q", got, want)
	}
}

func TestFileBackendRoundtrip(t *testing.T) {
	b := newTestFileBackend(t, "work")

	if err := b.Store("xoxb-test-123"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "xoxb-test-123" {
		t.Errorf("Load = %q, want %q", got, "xoxb-test-123")
	}

	if err := b.Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// 削除後の Load は MissingToken
	_, err = b.Load()
	var missing *MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("Load after Delete = %v, want MissingTokenError", err)
	}
	if missing.Location.Source != SourceFile {
		t.Errorf("Location.Source = %v, want SourceFile", missing.Location.Source)
	}
}

func TestFileBackendLoadMissing(t *testing.T) {
	b := newTestFileBackend(t, "nothing")

	_, err := b.Load()
	var missing *MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("Load = %v, want MissingTokenError", err)
	}
}

// Delete はべき等: 無いものを消しても成功
func TestFileBackendDeleteIdempotent(t *testing.T) {
	b := newTestFileBackend(t, "work")

	if err := b.Delete(); err != nil {
		t.Errorf("Delete on missing file = %v, want nil", err)
	}
	if err := b.Store("xoxb-x"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := b.Delete(); err != nil {
		t.Errorf("Delete = %v, want nil", err)
	}
	if err := b.Delete(); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
}

func TestFileBackendPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}

	b := newTestFileBackend(t, "work")
	if err := b.Store("xoxb-secret"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	info, err := os.Stat(b.Location().Path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}
}

// Store は一時ファイル経由で rename するので、書きかけの一時ファイルが
// 残っていても Load は完全な値だけを観測する。
func TestFileBackendStoreAtomic(t *testing.T) {
	b := newTestFileBackend(t, "work")
	if err := b.Store("xoxb-old"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	// 中断された Store を装って、切り詰められた一時ファイルを置く
	dir := filepath.Dir(b.Location().Path)
	if err := os.WriteFile(filepath.Join(dir, ".tmp-12345"), []byte("xoxb-trunc"[:4]), 0o600); err != nil {
		t.Fatalf("failed to plant temp file: %v", err)
	}

	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "xoxb-old" {
		t.Errorf("Load = %q, want the previous complete value", got)
	}

	// 新しい値を書けば以降はそれが見える
	if err := b.Store("xoxb-new"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	got, err = b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "xoxb-new" {
		t.Errorf("Load = %q, want %q", got, "xoxb-new")
	}
}

// 値の前後の空白・改行は除去される
func TestFileBackendTrimsWhitespace(t *testing.T) {
	b := newTestFileBackend(t, "work")

	if err := os.MkdirAll(filepath.Dir(b.Location().Path), 0o700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(b.Location().Path, []byte("xoxb-abc\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "xoxb-abc" {
		t.Errorf("Load = %q, want %q", got, "xoxb-abc")
	}
}

// 空のトークンファイルは「未設定」扱い
func TestFileBackendEmptyFile(t *testing.T) {
	b := newTestFileBackend(t, "work")

	if err := os.MkdirAll(filepath.Dir(b.Location().Path), 0o700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(b.Location().Path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := b.Load()
	var missing *MissingTokenError
	if !errors.As(err, &missing) {
		t.Errorf("Load = %v, want MissingTokenError", err)
	}
}

// Open はパス導出より前にプロファイル名を検証する
func TestOpenRejectsTraversal(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	for _, name := range []string{"../other", `a\b`, "a\x00b"} {
		if _, err := Open("file", name); err == nil {
			t.Errorf("Open(file, %q) should fail", name)
		}
	}
}
