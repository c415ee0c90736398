package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/EmundoT/repro-verify/internal/types"
)

// Comparator is a comparison backend. Compare reports whether the two files
// are equivalent and, when they are not, a backend-defined JSON payload.
// A backend that cannot run at all returns an error wrapping
// ErrComparatorUnavailable.
type Comparator interface {
	Compare(ctx context.Context, fileA, fileB, workDir string) (identical bool, details json.RawMessage, err error)
	Capabilities(ctx context.Context) types.EnvironmentCapabilities
}

// Compile-time interface satisfaction check.
var _ Comparator = (*ZipComparator)(nil)

// EntryDifference is one differing ZIP entry.
type EntryDifference struct {
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

// ZipDiffReport is the details payload produced by ZipComparator.
type ZipDiffReport struct {
	Comparator  string            `json:"comparator"`
	Differences []EntryDifference `json:"differences"`
}

// ZipComparator compares two APKs entry by entry, ignoring JAR signature
// files so an unsigned build can match a signed release. Besides content it
// checks compression method, modification time and entry order.
type ZipComparator struct{}

// NewZipComparator creates a new ZipComparator
func NewZipComparator() *ZipComparator {
	return &ZipComparator{}
}

// isSignatureEntry reports whether name belongs to the v1 (JAR) signature.
func isSignatureEntry(name string) bool {
	if !strings.HasPrefix(name, "META-INF/") || strings.Count(name, "/") != 1 {
		return false
	}
	if name == "META-INF/MANIFEST.MF" {
		return true
	}
	switch strings.ToUpper(path.Ext(name)) {
	case ".SF", ".RSA", ".DSA", ".EC":
		return true
	}
	return false
}

// indexEntries maps the non-signature entries by name and returns their
// names in central directory order.
func indexEntries(files []*zip.File) (map[string]*zip.File, []string) {
	out := make(map[string]*zip.File, len(files))
	order := make([]string, 0, len(files))
	for _, f := range files {
		if isSignatureEntry(f.Name) {
			continue
		}
		out[f.Name] = f
		order = append(order, f.Name)
	}
	return out, order
}

// orderDifference returns the first entry, common to both archives, that
// sits at a different relative position. Entries present on one side only
// are reported separately and do not count here.
func orderDifference(orderA, orderB []string, inA, inB map[string]*zip.File) (EntryDifference, bool) {
	common := func(order []string, other map[string]*zip.File) []string {
		out := make([]string, 0, len(order))
		for _, name := range order {
			if _, ok := other[name]; ok {
				out = append(out, name)
			}
		}
		return out
	}
	a := common(orderA, inB)
	b := common(orderB, inA)
	for i := range a {
		if a[i] != b[i] {
			return EntryDifference{Entry: a[i], Reason: fmt.Sprintf("entry order differs at position %d (%s)", i, b[i])}, true
		}
	}
	return EntryDifference{}, false
}

// metadataDifference compares the header fields that change the archive
// bytes without changing entry content. Extra fields are left out: zipalign
// pads them when the release is signed.
func metadataDifference(fa, fb *zip.File) (string, bool) {
	if fa.Method != fb.Method {
		return fmt.Sprintf("compression method %d != %d", fa.Method, fb.Method), true
	}
	if !fa.Modified.Equal(fb.Modified) {
		return fmt.Sprintf("modified %s != %s", fa.Modified.UTC().Format(time.RFC3339), fb.Modified.UTC().Format(time.RFC3339)), true
	}
	return "", false
}

func entryDigest(f *zip.File) ([sha256.Size]byte, error) {
	var sum [sha256.Size]byte
	rc, err := f.Open()
	if err != nil {
		return sum, err
	}
	defer func() { _ = rc.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, rc); err != nil {
		return sum, err
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// Compare implements Comparator.
func (c *ZipComparator) Compare(ctx context.Context, fileA, fileB, _ string) (bool, json.RawMessage, error) {
	a, err := zip.OpenReader(fileA)
	if err != nil {
		return false, nil, fmt.Errorf("open %s: %w", fileA, err)
	}
	defer func() { _ = a.Close() }()

	b, err := zip.OpenReader(fileB)
	if err != nil {
		return false, nil, fmt.Errorf("open %s: %w", fileB, err)
	}
	defer func() { _ = b.Close() }()

	entriesA, orderA := indexEntries(a.File)
	entriesB, orderB := indexEntries(b.File)

	names := make([]string, 0, len(entriesA)+len(entriesB))
	for name := range entriesA {
		names = append(names, name)
	}
	for name := range entriesB {
		if _, ok := entriesA[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	report := ZipDiffReport{Comparator: ComparatorZip, Differences: []EntryDifference{}}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return false, nil, fmt.Errorf("compare cancelled: %w", err)
		}

		fa, inA := entriesA[name]
		fb, inB := entriesB[name]
		switch {
		case !inB:
			report.Differences = append(report.Differences, EntryDifference{Entry: name, Reason: "only in " + path.Base(fileA)})
			continue
		case !inA:
			report.Differences = append(report.Differences, EntryDifference{Entry: name, Reason: "only in " + path.Base(fileB)})
			continue
		}

		if fa.UncompressedSize64 != fb.UncompressedSize64 {
			report.Differences = append(report.Differences, EntryDifference{
				Entry:  name,
				Reason: fmt.Sprintf("size %d != %d", fa.UncompressedSize64, fb.UncompressedSize64),
			})
			continue
		}
		if fa.CRC32 != fb.CRC32 {
			report.Differences = append(report.Differences, EntryDifference{Entry: name, Reason: "content differs"})
			continue
		}

		// Matching CRC32: confirm with a full digest.
		da, err := entryDigest(fa)
		if err != nil {
			return false, nil, fmt.Errorf("read %s in %s: %w", name, fileA, err)
		}
		db, err := entryDigest(fb)
		if err != nil {
			return false, nil, fmt.Errorf("read %s in %s: %w", name, fileB, err)
		}
		if da != db {
			report.Differences = append(report.Differences, EntryDifference{Entry: name, Reason: "content differs"})
			continue
		}
		if reason, differs := metadataDifference(fa, fb); differs {
			report.Differences = append(report.Differences, EntryDifference{Entry: name, Reason: reason})
		}
	}
	if d, differs := orderDifference(orderA, orderB, entriesA, entriesB); differs {
		report.Differences = append(report.Differences, d)
	}

	if len(report.Differences) == 0 {
		return true, nil, nil
	}

	details, err := json.Marshal(report)
	if err != nil {
		return false, nil, fmt.Errorf("marshal zip report: %w", err)
	}
	return false, details, nil
}

// Capabilities implements Comparator. The built-in comparator needs no
// external tools.
func (c *ZipComparator) Capabilities(context.Context) types.EnvironmentCapabilities {
	return types.EnvironmentCapabilities{}
}
