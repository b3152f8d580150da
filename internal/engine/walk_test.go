package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datahunter/datahunter/internal/types"
)

func tree(names ...string) fstest.MapFS {
	m := fstest.MapFS{"data": &fstest.MapFile{Mode: fs.ModeDir}}
	for _, n := range names {
		m["data/"+n] = &fstest.MapFile{Data: []byte("x")}
	}
	return m
}

func numbered(format string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i)
	}
	return out
}

func TestBatchScan_EmptyDirectory(t *testing.T) {
	e := newTestEngine(t, WithFS(memFS{files: tree()}))
	sum, err := e.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalFiles)
	assert.Equal(t, types.TierSafe, sum.RecommendationTier)
	assert.Equal(t, "SAFE: No major sensitive data detected.", sum.Recommendation)
	assert.NotNil(t, sum.HighRiskFiles)
	assert.Empty(t, sum.HighRiskFiles)
}

func TestBatchScan_Tiers(t *testing.T) {
	cases := []struct {
		name  string
		files []string
		want  types.DirectoryTier
	}{
		{"critical", numbered("passport_ssn_password_%02d.txt", 11), types.TierCritical},
		{"warning", append([]string{"passport_ssn_password.txt"}, numbered("photo_%02d.jpg", 5)...), types.TierWarning},
		{"caution", numbered("invoice_%02d.csv", 6), types.TierCaution},
		{"safe", numbered("invoice_%02d.csv", 5), types.TierSafe},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEngine(t, WithFS(memFS{files: tree(c.files...)}))
			sum, err := e.BatchScanDirectory(context.Background(), "data", false)
			require.NoError(t, err)
			assert.Equal(t, len(c.files), sum.TotalFiles)
			assert.Equal(t, c.want, sum.RecommendationTier)
			assert.Equal(t, sum.TotalFiles, len(sum.HighRiskFiles)+len(sum.MediumRiskFiles)+len(sum.LowRiskFiles))
			assert.Len(t, sum.SensitiveFiles, len(sum.HighRiskFiles)+len(sum.MediumRiskFiles))
		})
	}
}

func TestBatchScan_Recursion(t *testing.T) {
	files := tree("top_secret.txt", "sub/deeper/salary.csv", "sub/photo.jpg")
	e := newTestEngine(t, WithFS(memFS{files: files}))

	flat, err := e.BatchScanDirectory(context.Background(), "data", false)
	require.NoError(t, err)
	assert.Equal(t, 1, flat.TotalFiles)

	deep, err := e.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, 3, deep.TotalFiles)
	require.Len(t, deep.MediumRiskFiles, 2)
	assert.Equal(t, filepath.Join("data", "sub", "deeper", "salary.csv"), deep.MediumRiskFiles[0].Path)
	assert.Equal(t, []string{"salary"}, deep.MediumRiskFiles[0].Keywords)
	assert.Equal(t, "top_secret.txt", deep.MediumRiskFiles[1].Name)
}

func TestBatchScan_UnreadableSubdirIsSkipped(t *testing.T) {
	files := tree("secret.txt", "locked/passport.pdf", "open/photo.jpg")
	e := newTestEngine(t, WithFS(memFS{
		files: files,
		fail:  map[string]error{filepath.Join("data", "locked"): fs.ErrPermission},
	}))
	sum, err := e.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalFiles)
	assert.Equal(t, 1, sum.Skipped)
	require.Len(t, sum.Issues, 1)
	assert.Equal(t, types.IssueTraversal, sum.Issues[0].Kind)
	assert.Equal(t, filepath.Join("data", "locked"), sum.Issues[0].Path)
}

func TestBatchScan_InvalidRoot(t *testing.T) {
	e := newTestEngine(t, WithFS(memFS{files: tree()}))
	_, err := e.BatchScanDirectory(context.Background(), "", true)
	assert.ErrorIs(t, err, types.ErrInput)
	_, err = e.BatchScanDirectory(context.Background(), "nope", true)
	assert.ErrorIs(t, err, types.ErrInput)
}

func TestBatchScan_Cancelled(t *testing.T) {
	e := newTestEngine(t, WithFS(memFS{files: tree(numbered("ssn_%02d.txt", 20)...)}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := e.BatchScanDirectory(ctx, "data", true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, sum.Cancelled)
	assert.Equal(t, 0, sum.TotalFiles)
	assert.Equal(t, "data", sum.Directory)
}

func TestBatchScan_IndependentOfWorkerCount(t *testing.T) {
	files := tree(append(numbered("passport_ssn_password_%02d.txt", 7), numbered("sub/tax_%02d.pdf", 9)...)...)
	one := newTestEngine(t, WithFS(memFS{files: files}), WithConfig(Config{Workers: 1}))
	many := newTestEngine(t, WithFS(memFS{files: files}), WithConfig(Config{Workers: 8}))
	a, err := one.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	b, err := many.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 16, a.TotalFiles)
}

func TestBatchScan_GlobsAndDefaultExcludes(t *testing.T) {
	files := tree("salary.csv", "salary.tmp", "node_modules/secret.txt", ".DS_Store")
	e := newTestEngine(t, WithFS(memFS{files: files}), WithConfig(Config{
		ExcludeGlobs:    "*.tmp",
		DefaultExcludes: true,
	}))
	sum, err := e.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalFiles)
	assert.Equal(t, "salary.csv", sum.MediumRiskFiles[0].Name)

	inc := newTestEngine(t, WithFS(memFS{files: files}), WithConfig(Config{IncludeGlobs: "**/*.txt"}))
	sum, err = inc.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalFiles)
}

func TestBatchScan_OSWithIgnoreFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "skip"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip", "password.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".datahunterignore"), []byte("skip/\n"), 0o644))

	e := newTestEngine(t)
	sum, err := e.BatchScanDirectory(context.Background(), root, true)
	require.NoError(t, err)
	// secret.txt and the ignore file itself
	assert.Equal(t, 2, sum.TotalFiles)
	require.Len(t, sum.MediumRiskFiles, 1)
	assert.Equal(t, filepath.Join(root, "secret.txt"), sum.MediumRiskFiles[0].Path)
}

func TestBatchScan_OSUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "ssn.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "photo.jpg"), []byte("x"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	e := newTestEngine(t)
	sum, err := e.BatchScanDirectory(context.Background(), root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalFiles)
	assert.Equal(t, 1, sum.Skipped)
}

func TestBatchScan_IgnoreFileReadThroughFS(t *testing.T) {
	files := tree("secret.txt", "salary.csv")
	files["data/.datahunterignore"] = &fstest.MapFile{Data: []byte("# local\n*.txt\n")}
	e := newTestEngine(t, WithFS(memFS{files: files}))
	sum, err := e.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	// salary.csv and the ignore file itself
	assert.Equal(t, 2, sum.TotalFiles)
	for _, f := range append(sum.SensitiveFiles, sum.LowRiskFiles...) {
		assert.NotEqual(t, "secret.txt", f.Name)
	}
	assert.Empty(t, sum.Issues)
}

func TestBatchScan_UnreadableIgnoreFileIsIssue(t *testing.T) {
	files := tree("secret.txt")
	files["data/.datahunterignore"] = &fstest.MapFile{Data: []byte("*.txt\n")}
	ignorePath := filepath.Join("data", ".datahunterignore")
	e := newTestEngine(t, WithFS(memFS{
		files: files,
		fail:  map[string]error{ignorePath: fs.ErrPermission},
	}))
	sum, err := e.BatchScanDirectory(context.Background(), "data", true)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalFiles)
	assert.Equal(t, 0, sum.Skipped)
	require.Len(t, sum.Issues, 1)
	assert.Equal(t, types.IssueTraversal, sum.Issues[0].Kind)
	assert.Equal(t, ignorePath, sum.Issues[0].Path)
}

func TestBatchScan_UnreadableRootIsError(t *testing.T) {
	e := newTestEngine(t, WithFS(memFS{
		files: tree("ssn.txt"),
		fail:  map[string]error{"data": fs.ErrPermission},
	}))
	sum, err := e.BatchScanDirectory(context.Background(), "data", true)
	assert.ErrorIs(t, err, ErrRootUnreadable)
	assert.NotErrorIs(t, err, types.ErrInput)
	assert.Equal(t, 0, sum.TotalFiles)
	assert.Equal(t, 1, sum.Skipped)
	assert.NotEqual(t, types.TierSafe, sum.RecommendationTier)
	require.Len(t, sum.Issues, 1)
	assert.Equal(t, "data", sum.Issues[0].Path)
}

func TestBatchScan_OSSymlinkedDirectoryIsNotAFile(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a.txt"), []byte("x"), 0o644))
	if err := os.Symlink(target, filepath.Join(root, "passport_ssn_password_link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(target, "a.txt"), filepath.Join(root, "ssn_link.txt")))

	e := newTestEngine(t)
	sum, err := e.BatchScanDirectory(context.Background(), root, true)
	require.NoError(t, err)
	// real/a.txt once, plus the link to a file
	assert.Equal(t, 2, sum.TotalFiles)
	assert.Empty(t, sum.HighRiskFiles)
	require.Len(t, sum.MediumRiskFiles, 1)
	assert.Equal(t, "ssn_link.txt", sum.MediumRiskFiles[0].Name)
}
