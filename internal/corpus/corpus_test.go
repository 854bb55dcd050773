package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"harshagw/strmatch/internal/gen"
)

func TestOpenCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	content := "the quick brown fox jumps over the lazy dog"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != len(content) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(content))
	}
	text := c.Text()

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	// Text must remain valid after Close.
	if text != content {
		t.Errorf("Text() = %q, want %q", text, content)
	}
}

func TestOpenCorpusErrors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	os.WriteFile(empty, nil, 0644)
	if _, err := Open(empty); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"short", "hello world"},
		{"multi chunk", gen.New(11).Text(3 * cacheChunkSize)},
		{"partial last chunk", gen.New(12).Text(cacheChunkSize + 100)},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "cache.smc")
		if err := WriteCache(path, tt.text); err != nil {
			t.Fatalf("%s: WriteCache: %v", tt.name, err)
		}
		got, err := ReadCache(path)
		if err != nil {
			t.Fatalf("%s: ReadCache: %v", tt.name, err)
		}
		if got != tt.text {
			t.Errorf("%s: round trip changed text (got %d bytes, want %d)", tt.name, len(got), len(tt.text))
		}
	}
}

func TestReadCacheRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.smc")
	os.WriteFile(path, []byte("NOTACACHEFILE"), 0644)

	if _, err := ReadCache(path); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestBuildVocab(t *testing.T) {
	v, err := BuildVocab("The cat sat on the mat. The cat slept.")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		token string
		count uint64
		found bool
	}{
		{"the", 3, true},
		{"cat", 2, true},
		{"mat", 1, true},
		{"The", 3, true}, // lookup is case-insensitive
		{"dog", 0, false},
	}

	for _, tt := range tests {
		count, ok := v.Lookup(tt.token)
		if ok != tt.found || count != tt.count {
			t.Errorf("Lookup(%q) = %d,%v, want %d,%v", tt.token, count, ok, tt.count, tt.found)
		}
	}

	if v.Len() != 6 { // the, cat, sat, on, mat, slept
		t.Errorf("Len() = %d, want 6", v.Len())
	}
}

func TestVocabTokens(t *testing.T) {
	v, err := BuildVocab("b a c a")
	if err != nil {
		t.Fatal(err)
	}

	tokens, counts, err := v.Tokens(0)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(tokens, ",") != "a,b,c" {
		t.Errorf("tokens = %v, want lexical order a,b,c", tokens)
	}
	if counts[0] != 2 || counts[1] != 1 || counts[2] != 1 {
		t.Errorf("counts = %v", counts)
	}

	tokens, _, err = v.Tokens(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Errorf("limited tokens = %v, want 2 entries", tokens)
	}
}

func TestBuildVocabEmpty(t *testing.T) {
	v, err := BuildVocab("")
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
	if _, ok := v.Lookup("anything"); ok {
		t.Error("empty vocab should not contain tokens")
	}
}
