package core

import (
	"errors"
	"fmt"

	"github.com/shogo82148/androidbinary/apk"

	"github.com/EmundoT/repro-verify/internal/types"
)

// IdentityExtractor reads the package identity out of an artifact file.
// Failures are reported as *IdentityExtractionError.
type IdentityExtractor interface {
	Identity(path string) (types.ArtifactIdentity, error)
}

// Compile-time interface satisfaction check.
var _ IdentityExtractor = (*APKIdentityExtractor)(nil)

// APKIdentityExtractor decodes the binary AndroidManifest.xml of an APK.
type APKIdentityExtractor struct{}

// NewAPKIdentityExtractor creates a new APKIdentityExtractor
func NewAPKIdentityExtractor() *APKIdentityExtractor {
	return &APKIdentityExtractor{}
}

// Identity returns packageName, versionCode and versionName of the APK at path.
func (e *APKIdentityExtractor) Identity(path string) (id types.ArtifactIdentity, err error) {
	pkg, err := apk.OpenFile(path)
	if err != nil {
		return id, &IdentityExtractionError{Path: path, Err: err}
	}
	defer func() { _ = pkg.Close() }()

	manifest := pkg.Manifest()

	versionCode, err := manifest.VersionCode.Int32()
	if err != nil {
		return id, &IdentityExtractionError{Path: path, Err: fmt.Errorf("versionCode: %w", err)}
	}
	// versionName is optional in the manifest
	versionName, _ := manifest.VersionName.String()

	name := pkg.PackageName()
	if name == "" {
		return id, &IdentityExtractionError{Path: path, Err: errors.New("manifest has no package attribute")}
	}

	return types.ArtifactIdentity{
		PackageName: name,
		VersionCode: int64(versionCode),
		VersionName: versionName,
	}, nil
}
