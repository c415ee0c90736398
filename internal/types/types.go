// Package types defines data structures for repro-verify configuration and audit records.
package types

// VerifyConfig is the optional repro-verify.yml configuration.
// Zero-valued fields fall back to the defaults in core.DefaultConfig.
type VerifyConfig struct {
	RepoURL        string          `yaml:"repo_url,omitempty"`
	Fallback       FallbackRewrite `yaml:"fallback,omitempty"`
	UnsignedDir    string          `yaml:"unsigned_dir,omitempty"`
	TmpDir         string          `yaml:"tmp_dir,omitempty"`
	HTTPTimeout    string          `yaml:"http_timeout,omitempty"` // time.ParseDuration format
	UserAgent      string          `yaml:"user_agent,omitempty"`
	Comparator     string          `yaml:"comparator,omitempty"` // "zip" or "diffoscope"
	DiffoscopePath string          `yaml:"diffoscope_path,omitempty"`
}

// FallbackRewrite is the path substitution applied to a download URL when
// the primary fetch fails, e.g. "/repo" -> "/archive".
type FallbackRewrite struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// ArtifactIdentity identifies a built package.
type ArtifactIdentity struct {
	PackageName string `json:"packageName"`
	VersionCode int64  `json:"versionCode"`
	VersionName string `json:"versionName"`
}

// PublishedName is the identity encoded in a published file name
// (<packageName>_<versionCode>.apk). It carries no versionName.
type PublishedName struct {
	PackageName string
	VersionCode int64
}
