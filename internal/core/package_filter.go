package core

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/EmundoT/repro-verify/internal/types"
)

// publishedNameRegexp matches <packageName>_<versionCode>.apk
var publishedNameRegexp = regexp.MustCompile(`^(.+)_([0-9]+)\.apk$`)

// ParsePublishedName derives the package name and version code from a
// published file name such as com.example.app_3.apk.
func ParsePublishedName(path string) (types.PublishedName, error) {
	base := filepath.Base(path)
	m := publishedNameRegexp.FindStringSubmatch(base)
	if m == nil {
		return types.PublishedName{}, fmt.Errorf("%w: %s", ErrInvalidPublishedName, base)
	}
	code, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return types.PublishedName{}, fmt.Errorf("%w: %s: %v", ErrInvalidPublishedName, base, err)
	}
	return types.PublishedName{PackageName: m[1], VersionCode: code}, nil
}

// PackageFilter is the APPID[:VERCODE] selection given on the command line.
// An empty filter selects everything.
type PackageFilter struct {
	args     []string
	versions map[string][]int64
}

// ParsePackageArgs parses APPID[:VERCODE] arguments. Repeating an APPID
// with different version codes accumulates them.
func ParsePackageArgs(args []string) (*PackageFilter, error) {
	f := &PackageFilter{versions: make(map[string][]int64)}
	for _, arg := range args {
		name, code, hasCode := strings.Cut(arg, ":")
		if name == "" {
			return nil, fmt.Errorf("invalid package argument %q: empty application ID", arg)
		}
		f.args = append(f.args, name)
		if _, seen := f.versions[name]; !seen {
			f.versions[name] = nil
		}
		if !hasCode {
			continue
		}
		vc, err := strconv.ParseInt(code, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid versionCode %q in %q: %w", code, arg, err)
		}
		f.versions[name] = append(f.versions[name], vc)
	}
	return f, nil
}

// Empty reports whether no package was requested.
func (f *PackageFilter) Empty() bool {
	return f == nil || len(f.args) == 0
}

// Selects reports whether the artifact should be processed: its package
// must be requested and, when version codes were given for that package,
// its version code must be among them.
func (f *PackageFilter) Selects(name types.PublishedName) bool {
	if f.Empty() {
		return true
	}
	codes, ok := f.versions[name.PackageName]
	if !ok {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if c == name.VersionCode {
			return true
		}
	}
	return false
}

// Arguments returns the package name of every argument in order, keeping
// repeats: gone.app:1 gone.app:2 yields gone.app twice.
func (f *PackageFilter) Arguments() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.args...)
}
