package types

// Artifact status values for ArtifactResult.Status.
const (
	ArtifactStatusVerified    = "verified"
	ArtifactStatusNotVerified = "not_verified"
	ArtifactStatusSkipped     = "skipped"
)

// Failure stages for ArtifactResult.Stage.
const (
	FailureStageName     = "name"     // the file name is not <package>_<versionCode>.apk
	FailureStageDownload = "download" // neither URL could be fetched
	FailureStageCompare  = "compare"  // the builds differ or could not be compared
	FailureStageIdentity = "identity" // the manifest could not be read
	FailureStageStore    = "store"    // the audit files could not be written
	FailureStageOther    = "other"
)

// VerifySummary is the result of one batch run. It is printed with --json
// and its NotVerified count becomes the process exit status.
type VerifySummary struct {
	SchemaVersion string           `json:"schema_version"`
	RunID         string           `json:"run_id"`
	Timestamp     string           `json:"timestamp"`
	Verified      int              `json:"verified"`
	NotVerified   int              `json:"not_verified"`
	Artifacts     []ArtifactResult `json:"artifacts"`
	// MissingPackages lists explicitly requested packages with no local APK.
	MissingPackages []string `json:"missing_packages,omitempty"`
}

// ArtifactResult is the per-APK line of a VerifySummary.
type ArtifactResult struct {
	File        string `json:"file"`
	PackageName string `json:"package_name,omitempty"`
	VersionCode int64  `json:"version_code,omitempty"`
	URL         string `json:"url,omitempty"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	Stage       string `json:"stage,omitempty"` // set when Status is not_verified
}

// ExitCode returns the process exit status for the run: the number of
// packages that were not verified.
func (s *VerifySummary) ExitCode() int {
	return s.NotVerified
}
