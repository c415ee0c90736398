package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/EmundoT/repro-verify/internal/types"
	"github.com/EmundoT/repro-verify/internal/version"
)

// maxConfigFileSize is the maximum size of repro-verify.yml (1 MB).
const maxConfigFileSize = 1 << 20

// Environment overrides, applied after the config file.
const (
	EnvRepoURL     = "REPRO_VERIFY_REPO_URL"
	EnvHTTPTimeout = "REPRO_VERIFY_HTTP_TIMEOUT"
)

// Config is the resolved runtime configuration. It is built once in main
// and passed down explicitly; nothing reads configuration from globals.
type Config struct {
	RepoURL        string
	Fallback       types.FallbackRewrite
	UnsignedDir    string
	TmpDir         string
	HTTPTimeout    time.Duration
	UserAgent      string
	Comparator     string
	DiffoscopePath string
}

// RegistryPath returns the path of the global verified registry.
func (c Config) RegistryPath() string {
	return filepath.Join(c.UnsignedDir, VerifiedRegistryFile)
}

// ArtifactURL returns the published URL of the APK with the given file name.
func (c Config) ArtifactURL(apkFilename string) string {
	return strings.TrimSuffix(c.RepoURL, "/") + "/" + apkFilename
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	timeout, _ := time.ParseDuration(DefaultHTTPTimeout)
	return Config{
		RepoURL:        DefaultRepoURL,
		Fallback:       types.FallbackRewrite{From: DefaultFallbackFrom, To: DefaultFallbackTo},
		UnsignedDir:    UnsignedDir,
		TmpDir:         TmpDir,
		HTTPTimeout:    timeout,
		UserAgent:      version.UserAgent(DefaultUserAgent),
		Comparator:     ComparatorZip,
		DiffoscopePath: DefaultDiffoscope,
	}
}

// ConfigStore handles repro-verify.yml I/O operations
type ConfigStore interface {
	Load() (types.VerifyConfig, error)
	Path() string
}

// FileConfigStore implements ConfigStore using the filesystem
type FileConfigStore struct {
	path string
}

// NewFileConfigStore creates a new FileConfigStore
func NewFileConfigStore(path string) *FileConfigStore {
	return &FileConfigStore{path: path}
}

// Path returns the config file path
func (s *FileConfigStore) Path() string {
	return s.path
}

// Load reads and parses repro-verify.yml. A missing file is not an error.
func (s *FileConfigStore) Load() (types.VerifyConfig, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.VerifyConfig{}, nil
		}
		return types.VerifyConfig{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if info.Size() > maxConfigFileSize {
		return types.VerifyConfig{}, fmt.Errorf("%s exceeds maximum size (%d bytes > %d byte limit)", s.path, info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return types.VerifyConfig{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var cfg types.VerifyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.VerifyConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(s.path), err)
	}

	return cfg, nil
}

// ResolveConfig merges the file configuration over the defaults, then applies
// environment overrides, and validates the result.
func ResolveConfig(file types.VerifyConfig, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if file.RepoURL != "" {
		cfg.RepoURL = file.RepoURL
	}
	if file.Fallback.From != "" {
		cfg.Fallback = file.Fallback
	}
	if file.UnsignedDir != "" {
		cfg.UnsignedDir = file.UnsignedDir
	}
	if file.TmpDir != "" {
		cfg.TmpDir = file.TmpDir
	}
	if file.UserAgent != "" {
		cfg.UserAgent = file.UserAgent
	}
	if file.Comparator != "" {
		cfg.Comparator = file.Comparator
	}
	if file.DiffoscopePath != "" {
		cfg.DiffoscopePath = file.DiffoscopePath
	}

	timeout := file.HTTPTimeout
	if getenv != nil {
		if v := getenv(EnvRepoURL); v != "" {
			cfg.RepoURL = v
		}
		if v := getenv(EnvHTTPTimeout); v != "" {
			timeout = v
		}
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid http_timeout %q: %w", timeout, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid http_timeout %q: must not be negative", timeout)
		}
		cfg.HTTPTimeout = d
	}

	switch cfg.Comparator {
	case ComparatorZip, ComparatorDiffoscope:
	default:
		return Config{}, fmt.Errorf("unknown comparator %q (expected %q or %q)", cfg.Comparator, ComparatorZip, ComparatorDiffoscope)
	}

	if !strings.Contains(cfg.RepoURL, "://") {
		return Config{}, fmt.Errorf("invalid repo_url %q: expected an absolute URL", cfg.RepoURL)
	}

	return cfg, nil
}

// LoadConfig reads the config file at path and resolves it against the
// process environment.
func LoadConfig(path string) (Config, error) {
	file, err := NewFileConfigStore(path).Load()
	if err != nil {
		return Config{}, err
	}
	return ResolveConfig(file, os.Getenv)
}
