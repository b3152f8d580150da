package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Smoke(t *testing.T) {
	eng, err := New(WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 2, eng.Workers())

	res := eng.ScanText("4532015112830366")
	assert.Equal(t, []string{"4532015112830366"}, res.Findings["credit_cards"])

	ssn := eng.ScanText("id 123-45-6789 and 000-45-6789")
	assert.Equal(t, []string{"123-45-6789"}, ssn.Findings["ssn"])

	dir := t.TempDir()
	sum, err := eng.BatchScanDirectory(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalFiles)
	assert.Equal(t, "safe", string(sum.RecommendationTier))

	_, err = eng.ScanFilename("")
	assert.ErrorIs(t, err, ErrInput)
	assert.Len(t, Categories(), 11)
}

func TestFacade_JSONRoundTrip(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tax_invoice.pdf"), []byte("x"), 0o644))
	sum, err := eng.BatchScanDirectory(context.Background(), dir, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, MarshalResult(&buf, sum))
	back, err := UnmarshalDirectorySummary(&buf)
	require.NoError(t, err)
	assert.Equal(t, sum, back)

	res, err := eng.ComprehensiveScan(filepath.Join(dir, "tax_invoice.pdf"), nil)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, MarshalResult(&buf, res))
	got, err := UnmarshalComprehensive(&buf)
	require.NoError(t, err)
	assert.Equal(t, res.OverallRisk, got.OverallRisk)
	assert.Nil(t, got.Content)
	assert.Contains(t, FormatReport(res), "RECOMMENDATIONS:")
	assert.Empty(t, FormatReport(3))
}

func TestFilenameScan_CaseInsensitiveProperty(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	words := []string{"Confidential", "REPORT", "ssn", "Passport", "notes", "Tax", "photo", "_", "-", "."}

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)
	properties.Property("scan_filename ignores case and is idempotent", prop.ForAll(
		func(picks []int) bool {
			var b strings.Builder
			for _, i := range picks {
				b.WriteString(words[i])
			}
			name := b.String() + ".txt"
			upper, err1 := eng.ScanFilename(name)
			lower, err2 := eng.ScanFilename(strings.ToLower(name))
			again, err3 := eng.ScanFilename(name)
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}
			return assert.ObjectsAreEqual(upper.Indicators, lower.Indicators) &&
				upper.SensitivityLevel == lower.SensitivityLevel &&
				assert.ObjectsAreEqual(upper, again)
		},
		gen.SliceOf(gen.IntRange(0, len(words)-1)),
	))
	properties.TestingRun(t)
}
