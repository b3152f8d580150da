package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/datahunter/datahunter/internal/ignore"
	"github.com/datahunter/datahunter/internal/types"
)

// ErrRootUnreadable reports that the directory root exists but could not be
// listed, so nothing under it was inspected.
var ErrRootUnreadable = errors.New("directory root is unreadable")

// BatchScanDirectory runs a filename scan over every file under root and
// buckets the results by sensitivity. Unreadable directories are skipped and
// counted, except the root itself, which yields ErrRootUnreadable. When ctx is
// cancelled the partial summary is returned with Cancelled set, together with
// ctx.Err().
func (e *Engine) BatchScanDirectory(ctx context.Context, root string, recursive bool) (types.DirectoryScanSummary, error) {
	if strings.TrimSpace(root) == "" {
		return types.DirectoryScanSummary{}, fmt.Errorf("%w: empty directory root", types.ErrInput)
	}
	sum := types.DirectoryScanSummary{
		Directory:       root,
		SensitiveFiles:  []types.FileEntry{},
		HighRiskFiles:   []types.FileEntry{},
		MediumRiskFiles: []types.FileEntry{},
		LowRiskFiles:    []types.FileEntry{},
	}
	log := e.log.WithField("root", root)
	ign, err := e.loadIgnore(root)
	if err != nil {
		sum.Issues = append(sum.Issues, types.ScanIssue{
			Kind:    types.IssueTraversal,
			Path:    filepath.Join(root, ignore.FileName),
			Message: fmt.Sprintf("cannot read ignore file: %v", err),
		})
		log.WithError(err).Warn("ignore file not applied")
	}
	filter := newGlobFilter(e.cfg.IncludeGlobs, e.cfg.ExcludeGlobs)

	var (
		g       errgroup.Group
		mu      sync.Mutex
		entries []types.FileEntry
	)
	g.SetLimit(e.cfg.Workers)

	queue := []string{root}
	var walkErr error
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			walkErr = err
			break
		}
		dir := queue[0]
		queue = queue[1:]

		dirents, err := e.fs.ReadDir(dir)
		if err != nil {
			if dir == root && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)) {
				return types.DirectoryScanSummary{}, fmt.Errorf("%w: %q is not a directory", types.ErrInput, root)
			}
			sum.Skipped++
			sum.Issues = append(sum.Issues, types.ScanIssue{
				Kind:    types.IssueTraversal,
				Path:    dir,
				Message: fmt.Sprintf("cannot read directory: %v", err),
			})
			if dir == root && len(dirents) == 0 {
				return sum, fmt.Errorf("%w: %v", ErrRootUnreadable, err)
			}
			log.WithError(err).WithField("dir", dir).Debug("skipping unreadable directory")
			// entries read before the error are still scanned
		}

		for _, d := range dirents {
			if ctx.Err() != nil {
				break
			}
			p := filepath.Join(dir, d.Name())
			rel, rerr := filepath.Rel(root, p)
			if rerr != nil {
				rel = d.Name()
			}
			rel = filepath.ToSlash(rel)
			if d.Type()&fs.ModeSymlink != 0 {
				// a link to a directory is neither walked nor counted
				if fi, ok, serr := e.fs.Stat(p); serr == nil && ok && fi.Dir {
					continue
				}
			}
			if d.IsDir() {
				if !recursive {
					continue
				}
				if e.cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
					continue
				}
				if ign.Match(rel) {
					continue
				}
				queue = append(queue, p)
				continue
			}
			if e.cfg.DefaultExcludes && isDefaultFileExcluded(d.Name()) {
				continue
			}
			if !filter.allowed(rel) || ign.Match(rel) {
				continue
			}
			name := d.Name()
			g.Go(func() error {
				entry := e.scanEntry(p, name)
				mu.Lock()
				entries = append(entries, entry)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()
	if walkErr == nil {
		walkErr = ctx.Err()
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	sum.TotalFiles = len(entries)
	for _, fe := range entries {
		switch fe.Sensitivity {
		case types.RiskHigh:
			sum.HighRiskFiles = append(sum.HighRiskFiles, fe)
		case types.RiskMedium:
			sum.MediumRiskFiles = append(sum.MediumRiskFiles, fe)
		default:
			sum.LowRiskFiles = append(sum.LowRiskFiles, fe)
		}
		if fe.Sensitivity != types.RiskLow {
			sum.SensitiveFiles = append(sum.SensitiveFiles, fe)
		}
	}
	sum.RecommendationTier, sum.Recommendation = DirectoryRecommendation(len(sum.HighRiskFiles), len(sum.MediumRiskFiles))
	if walkErr != nil {
		sum.Cancelled = true
		log.WithError(walkErr).Debug("directory scan cancelled; returning partial summary")
		return sum, walkErr
	}
	log.WithFields(logrus.Fields{
		"files":   sum.TotalFiles,
		"high":    len(sum.HighRiskFiles),
		"medium":  len(sum.MediumRiskFiles),
		"skipped": sum.Skipped,
	}).Debug("directory scan complete")
	return sum, nil
}

func (e *Engine) loadIgnore(root string) (ignore.Matcher, error) {
	b, err := e.fs.ReadFile(filepath.Join(root, ignore.FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return ignore.Matcher{}, nil
		}
		return ignore.Matcher{}, err
	}
	return ignore.Parse(bytes.NewReader(b))
}

func (e *Engine) scanEntry(path, name string) types.FileEntry {
	// name is a directory entry name and never empty
	res, _ := e.ScanFilename(name)
	return types.FileEntry{
		Path:        path,
		Name:        name,
		Sensitivity: res.SensitivityLevel,
		Keywords:    res.Indicators,
	}
}
