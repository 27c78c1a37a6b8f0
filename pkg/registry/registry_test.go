package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zoobzio/xrt"
)

const streamerKey = `SOFTWARE\Virtual Desktop, Inc.\Virtual Desktop Streamer`

const document = `
keys:
  - root: HKLM
    path: 'SOFTWARE\Virtual Desktop, Inc.\Virtual Desktop Streamer'
    values:
      Path: /opt/virtual-desktop
  - root: HKCU
    path: 'SOFTWARE\Other'
    values:
      Path: /home/user/other
`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(document))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(doc.Keys))
	}
}

func TestParse_RejectsUnknownRoot(t *testing.T) {
	_, err := Parse([]byte("keys:\n  - root: HKCR\n    path: SOFTWARE\n"))
	if err == nil {
		t.Fatal("expected validation error for unknown root")
	}
}

func TestParse_RejectsMissingPath(t *testing.T) {
	_, err := Parse([]byte("keys:\n  - root: HKLM\n"))
	if err == nil {
		t.Fatal("expected validation error for missing path")
	}
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("keys: [unterminated"))
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDocument_Lookup(t *testing.T) {
	doc, err := Parse([]byte(document))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v, ok := doc.Lookup(xrt.RegistryLocalMachine, streamerKey, "Path")
	if !ok || v != "/opt/virtual-desktop" {
		t.Errorf("expected /opt/virtual-desktop, got %q (ok=%v)", v, ok)
	}
}

func TestDocument_Lookup_CaseInsensitive(t *testing.T) {
	doc, err := Parse([]byte(document))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v, ok := doc.Lookup(xrt.RegistryLocalMachine, `software\virtual desktop, inc.\virtual desktop streamer`, "path")
	if !ok || v != "/opt/virtual-desktop" {
		t.Errorf("expected case-insensitive match, got %q (ok=%v)", v, ok)
	}
}

func TestDocument_Lookup_WrongRoot(t *testing.T) {
	doc, err := Parse([]byte(document))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, ok := doc.Lookup(xrt.RegistryCurrentUser, streamerKey, "Path"); ok {
		t.Error("expected no match under HKCU")
	}
}

func TestFile_ReadString(t *testing.T) {
	f := New(writeDocument(t, document))

	v, ok := f.ReadString(xrt.RegistryLocalMachine, streamerKey, "Path")
	if !ok || v != "/opt/virtual-desktop" {
		t.Errorf("expected /opt/virtual-desktop, got %q (ok=%v)", v, ok)
	}
}

func TestFile_ReadString_MissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "missing.yaml"))

	if _, ok := f.ReadString(xrt.RegistryLocalMachine, streamerKey, "Path"); ok {
		t.Error("expected missing file to read as empty")
	}
}

func TestFile_ReadString_InvalidFile(t *testing.T) {
	f := New(writeDocument(t, "keys:\n  - root: nowhere\n    path: x\n"))

	if _, ok := f.ReadString(xrt.RegistryLocalMachine, "x", "Path"); ok {
		t.Error("expected invalid file to read as empty")
	}
}

func TestFile_ReadString_SeesEdits(t *testing.T) {
	path := writeDocument(t, "keys: []\n")
	f := New(path)

	if _, ok := f.ReadString(xrt.RegistryLocalMachine, streamerKey, "Path"); ok {
		t.Fatal("expected no value before edit")
	}

	if err := os.WriteFile(path, []byte(document), 0o600); err != nil {
		t.Fatalf("failed to update file: %v", err)
	}

	if _, ok := f.ReadString(xrt.RegistryLocalMachine, streamerKey, "Path"); !ok {
		t.Error("expected value after edit")
	}
}
