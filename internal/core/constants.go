package core

// File and directory names, relative to the working directory.
const (
	// UnsignedDir holds the locally built, unsigned APKs to verify.
	UnsignedDir = "unsigned"
	// TmpDir caches downloaded release APKs and comparator scratch files.
	TmpDir = "tmp"
	// ConfigFile is the optional configuration file name.
	ConfigFile = "repro-verify.yml"
	// VerifiedRegistryFile is the global registry, stored inside UnsignedDir.
	VerifiedRegistryFile = "verified.json"
	// HistorySuffix is appended to an APK path to name its history store.
	HistorySuffix = ".json"
	// ArtifactExt is the extension of candidate artifacts.
	ArtifactExt = ".apk"
)

// Defaults used when repro-verify.yml does not set a value.
const (
	// DefaultRepoURL is the published repository the APKs are fetched from.
	DefaultRepoURL = "https://f-droid.org/repo/"
	// DefaultFallbackFrom is the URL fragment replaced on the archive retry.
	DefaultFallbackFrom = "/repo"
	// DefaultFallbackTo replaces DefaultFallbackFrom on the archive retry.
	DefaultFallbackTo = "/archive"
	// DefaultHTTPTimeout bounds a single download.
	DefaultHTTPTimeout = "10m"
	// DefaultUserAgent is the product name in the download User-Agent.
	DefaultUserAgent = "repro-verify"
	// DefaultDiffoscope is the diffoscope executable looked up on PATH.
	DefaultDiffoscope = "diffoscope"
)

// Comparator backend names for the comparator config key.
const (
	ComparatorZip        = "zip"
	ComparatorDiffoscope = "diffoscope"
)

// SummarySchemaVersion is written into every --json summary.
const SummarySchemaVersion = "1.0"
