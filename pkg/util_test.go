package pkg

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "log")
	f, err := InitLog(path, "TEST: ")
	if err != nil {
		t.Fatal(err)
	}
	log.Println("hello")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "TEST: ") || !strings.Contains(string(data), "hello") {
		t.Errorf("unexpected log content %q", data)
	}

	f, err = InitLog("", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("closing a discarded log should not fail: %v", err)
	}
}
