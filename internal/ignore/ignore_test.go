package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, FileName)
	content := "node_modules/\n*.pem\n# comment\n\nsecret.env\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js":     true,
		"web/node_modules/pkg/index.js": true,
		"certs/key.pem":                 true,
		"secret.env":                    true,
		"src/app.go":                    false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestLoadMissingIgnoresNothing(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), FileName))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !m.Empty() || m.Match("anything.txt") {
		t.Fatal("zero matcher must ignore nothing")
	}
	if !New("*.log").Match("logs/app.log") {
		t.Fatal("in-memory pattern should match base name")
	}
}

func TestAppend_Idempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("# keep\n*.log"), 0o644))
	require.NoError(t, Append(dir, "cache/"))
	require.NoError(t, Append(dir, "cache/"))
	require.NoError(t, Append(dir, "*.log"))
	b, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, "# keep\n*.log\ncache/\n", string(b))

	m, err := Load(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.True(t, m.Match("cache/x.txt"))
}

func TestParse_FromReader(t *testing.T) {
	m, err := Parse(strings.NewReader("# header\n./build/\n*.txt\n"))
	require.NoError(t, err)
	assert.True(t, m.Match("notes.txt"))
	assert.True(t, m.Match("build/out/a.csv"))
	assert.False(t, m.Match("salary.csv"))
}
