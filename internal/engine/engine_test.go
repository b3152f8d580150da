package engine

import (
	"errors"
	"io/fs"
	"path"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datahunter/datahunter/internal/types"
)

type fixedClassifier struct {
	score float64
	err   error
}

func (f fixedClassifier) Score(string) (float64, error) { return f.score, f.err }
func (fixedClassifier) Name() string                    { return "fixed" }

// memFS serves a MapFS and fails ReadDir or ReadFile for the listed paths.
type memFS struct {
	files fstest.MapFS
	fail  map[string]error
}

func (m memFS) Stat(p string) (FileInfo, bool, error) {
	fi := FileInfo{Path: p, Extension: extensionOf(p)}
	st, err := fs.Stat(m.files, p)
	if errors.Is(err, fs.ErrNotExist) {
		return fi, false, nil
	}
	if err != nil {
		return fi, false, err
	}
	fi.Size = st.Size()
	fi.Dir = st.IsDir()
	return fi, true, nil
}

func (m memFS) ReadDir(p string) ([]fs.DirEntry, error) {
	if err, ok := m.fail[p]; ok {
		return nil, err
	}
	return fs.ReadDir(m.files, p)
}

func (m memFS) ReadFile(p string) ([]byte, error) {
	if err, ok := m.fail[p]; ok {
		return nil, err
	}
	return fs.ReadFile(m.files, p)
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(append([]Option{WithClassifier(fixedClassifier{})}, opts...)...)
	require.NoError(t, err)
	return e
}

func TestContentRisk_Boundaries(t *testing.T) {
	cases := []struct {
		findings int
		score    float64
		want     types.RiskLevel
	}{
		{0, 0, types.RiskLow},
		{0, 0.4, types.RiskLow},
		{0, 0.41, types.RiskMedium},
		{1, 0, types.RiskMedium},
		{5, 0, types.RiskMedium},
		{6, 0, types.RiskHigh},
		{0, 0.6, types.RiskMedium},
		{0, 0.61, types.RiskHigh},
		{10, 0.79, types.RiskHigh},
		{0, 0.8, types.RiskHigh},
		{0, 0.81, types.RiskCritical},
		{11, 0, types.RiskCritical},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ContentRisk(c.findings, c.score), "findings=%d score=%v", c.findings, c.score)
	}
}

func TestFilenameLevel(t *testing.T) {
	assert.Equal(t, types.RiskLow, FilenameLevel(0))
	assert.Equal(t, types.RiskMedium, FilenameLevel(1))
	assert.Equal(t, types.RiskMedium, FilenameLevel(2))
	assert.Equal(t, types.RiskHigh, FilenameLevel(3))
}

func TestOverallRisk_Collapse(t *testing.T) {
	assert.Equal(t, types.RiskLow, OverallRisk())
	assert.Equal(t, types.RiskLow, OverallRisk(types.RiskLow, types.RiskLow))
	assert.Equal(t, types.RiskMedium, OverallRisk(types.RiskLow, types.RiskMedium))
	assert.Equal(t, types.RiskHigh, OverallRisk(types.RiskMedium, types.RiskHigh))
	assert.Equal(t, types.RiskHigh, OverallRisk(types.RiskLow, types.RiskCritical))
}

func TestDirectoryRecommendation(t *testing.T) {
	tier, msg := DirectoryRecommendation(11, 0)
	assert.Equal(t, types.TierCritical, tier)
	assert.True(t, strings.HasPrefix(msg, "CRITICAL"))
	tier, _ = DirectoryRecommendation(10, 0)
	assert.Equal(t, types.TierWarning, tier)
	tier, _ = DirectoryRecommendation(0, 6)
	assert.Equal(t, types.TierCaution, tier)
	tier, msg = DirectoryRecommendation(0, 5)
	assert.Equal(t, types.TierSafe, tier)
	assert.Equal(t, "SAFE: No major sensitive data detected.", msg)
}

func TestScanText_FindingsAndScore(t *testing.T) {
	e := newTestEngine(t, WithClassifier(fixedClassifier{score: 0.3}))
	res := e.ScanText("Contact john@example.com or 555-123-4567")
	assert.Equal(t, []string{"john@example.com"}, res.Findings[types.CatEmails])
	assert.Equal(t, []string{"555-123-4567"}, res.Findings[types.CatPhones])
	assert.Equal(t, 0.3, res.SensitivityScore)
	assert.Equal(t, types.RiskMedium, res.RiskLevel)
	assert.Empty(t, res.Issues)
	for _, c := range types.Categories() {
		_, ok := res.Findings[c]
		assert.True(t, ok, "category %s missing", c)
	}
}

func TestScanText_ScoreDrivesRisk(t *testing.T) {
	e := newTestEngine(t, WithClassifier(fixedClassifier{score: 0.81}))
	res := e.ScanText("nothing to see here")
	assert.Zero(t, res.TotalFindings())
	assert.Equal(t, types.RiskCritical, res.RiskLevel)
}

func TestScanText_ClassifierFailureDegrades(t *testing.T) {
	e := newTestEngine(t, WithClassifier(fixedClassifier{score: 0.99, err: errors.New("boom")}))
	res := e.ScanText("password: hunter2")
	assert.Equal(t, 0.0, res.SensitivityScore)
	assert.Equal(t, []string{"hunter2"}, res.Findings[types.CatPasswords])
	assert.Equal(t, types.RiskMedium, res.RiskLevel)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, types.IssueClassification, res.Issues[0].Kind)
	assert.Contains(t, res.Issues[0].Message, "boom")
}

func TestScanText_EmptyWithBootstrap(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	res := e.ScanText("")
	assert.Zero(t, res.TotalFindings())
	assert.Equal(t, 0.0, res.SensitivityScore)
	assert.Equal(t, types.RiskLow, res.RiskLevel)
}

func TestScanText_Deterministic(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	text := "Customer SSN 123-45-6789 and card 4111111111111111, password=Secr3t!"
	a := e.ScanText(text)
	b := e.ScanText(text)
	assert.Equal(t, a, b)
}

func TestScanFilename(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.ScanFilename("My_Passport_SSN_password.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"passport", "password", "ssn"}, res.Indicators)
	assert.True(t, res.IsSensitive)
	assert.Equal(t, types.RiskHigh, res.SensitivityLevel)

	res, err = e.ScanFilename("photo.jpg")
	require.NoError(t, err)
	assert.Empty(t, res.Indicators)
	assert.NotNil(t, res.Indicators)
	assert.False(t, res.IsSensitive)
	assert.Equal(t, types.RiskLow, res.SensitivityLevel)

	_, err = e.ScanFilename("")
	assert.ErrorIs(t, err, types.ErrInput)
}

func TestScanMetadata(t *testing.T) {
	e := newTestEngine(t)
	res := e.ScanMetadata(FileInfo{Path: "backup/dump.SQL", Size: 2_000_000_000})
	assert.Equal(t, ".sql", res.Extension)
	assert.Equal(t, []string{
		"Database file - may contain sensitive records",
		"Large file - may be backup or archive",
	}, res.Indicators)
	assert.Equal(t, []string{
		"Review .sql file for sensitive content before wiping",
		"Verify contents before deletion",
	}, res.Recommendations)

	res = e.ScanMetadata(FileInfo{Path: "notes.txt", Size: largeFileBytes})
	assert.Empty(t, res.Indicators)
	assert.Empty(t, res.Recommendations)

	res = e.ScanMetadata(FileInfo{Path: "app/.env"})
	assert.Equal(t, ".env", res.Extension)
	assert.Len(t, res.Indicators, 1)
}

func TestComprehensiveScan_FilenameOnly(t *testing.T) {
	files := fstest.MapFS{"docs/bank account statement.pdf": {Data: []byte("x")}}
	e := newTestEngine(t, WithFS(memFS{files: files}))
	res, err := e.ComprehensiveScan("docs/bank account statement.pdf", nil)
	require.NoError(t, err)
	assert.Nil(t, res.Content)
	assert.Equal(t, int64(1), res.Metadata.Size)
	assert.Equal(t, ".pdf", res.Metadata.Extension)
	assert.Equal(t, types.RiskMedium, res.Filename.SensitivityLevel)
	assert.Equal(t, types.RiskMedium, res.OverallRisk)
	assert.Equal(t, Recommendations(types.RiskMedium), res.Recommendations)
}

func TestComprehensiveScan_ContentEscalates(t *testing.T) {
	e := newTestEngine(t, WithFS(memFS{files: fstest.MapFS{}}), WithClassifier(fixedClassifier{score: 0.95}))
	content := "plain words"
	res, err := e.ComprehensiveScan("missing/notes.txt", &content)
	require.NoError(t, err)
	require.NotNil(t, res.Content)
	assert.Equal(t, types.RiskCritical, res.Content.RiskLevel)
	assert.Equal(t, types.RiskHigh, res.OverallRisk)
	assert.Equal(t, int64(0), res.Metadata.Size)
	assert.Len(t, res.Recommendations, 3)
}

func TestComprehensiveScan_EmptyContentSkipsScan(t *testing.T) {
	e := newTestEngine(t, WithFS(memFS{files: fstest.MapFS{}}))
	empty := ""
	res, err := e.ComprehensiveScan("notes.txt", &empty)
	require.NoError(t, err)
	assert.Nil(t, res.Content)
	assert.Equal(t, types.RiskLow, res.OverallRisk)
	assert.Equal(t, []string{"LOW RISK: Standard deletion recommended"}, res.Recommendations)
}

func TestComprehensiveScan_EmptyPath(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.ComprehensiveScan("  ", nil)
	assert.ErrorIs(t, err, types.ErrInput)
}

func TestComprehensiveScan_StatFailureIsIssue(t *testing.T) {
	e := newTestEngine(t, WithFS(statErrFS{}))
	res, err := e.ComprehensiveScan("x/secret.key", nil)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, types.IssueTraversal, res.Issues[0].Kind)
	assert.Equal(t, ".key", res.Metadata.Extension)
}

type statErrFS struct{}

func (statErrFS) Stat(string) (FileInfo, bool, error) { return FileInfo{}, false, fs.ErrPermission }

func (statErrFS) ReadDir(string) ([]fs.DirEntry, error) { return nil, fs.ErrPermission }

func (statErrFS) ReadFile(string) ([]byte, error) { return nil, fs.ErrPermission }

func TestNew_Defaults(t *testing.T) {
	e := newTestEngine(t)
	assert.GreaterOrEqual(t, e.Workers(), 1)
	assert.Equal(t, "fixed", e.Classifier().Name())
	assert.Equal(t, 3, determineWorkers(3))
	assert.Equal(t, 64, determineWorkers(500))
}

func TestGlobFilter(t *testing.T) {
	f := newGlobFilter("**/*.csv, docs/**", "**/tmp/**")
	assert.True(t, f.allowed("a/b/data.csv"))
	assert.True(t, f.allowed("docs/readme.md"))
	assert.False(t, f.allowed("a/notes.txt"))
	assert.False(t, f.allowed("x/tmp/data.csv"))
	assert.True(t, newGlobFilter("", "").allowed("anything"))
}

func TestLooksBinary(t *testing.T) {
	assert.True(t, LooksBinary("a.bin", []byte{'a', 0, 'b'}))
	assert.True(t, LooksBinary("a.png", []byte("hello")))
	assert.True(t, LooksBinary("a.dat", []byte("PK\x03\x04rest")))
	assert.False(t, LooksBinary("a.txt", []byte("password: hunter2")))
	assert.False(t, LooksBinary(path.Join("dir", "readme"), nil))
	assert.True(t, LooksBinary("scan.dat", []byte("%PDF-1.7\n")))
	assert.True(t, LooksBinary("report.pdf", []byte("anything")))
	assert.False(t, LooksBinary("salary.csv", []byte("name,card\nann,4532015112830366\n")))
}
