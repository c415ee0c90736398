package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComparators(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("zip without diffoscope", func(t *testing.T) {
		primary, enricher := NewComparators(cfg, &fakeRunner{missing: true})
		assert.IsType(t, &ZipComparator{}, primary)
		assert.Nil(t, enricher)
	})

	t.Run("zip enriched by diffoscope", func(t *testing.T) {
		primary, enricher := NewComparators(cfg, &fakeRunner{})
		assert.IsType(t, &ZipComparator{}, primary)
		assert.IsType(t, &DiffoscopeComparator{}, enricher)
	})

	t.Run("diffoscope as primary", func(t *testing.T) {
		cfg := cfg
		cfg.Comparator = ComparatorDiffoscope
		primary, enricher := NewComparators(cfg, &fakeRunner{missing: true})
		assert.IsType(t, &DiffoscopeComparator{}, primary)
		assert.Nil(t, enricher)
	})
}

func TestNewManager(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UnsignedDir = t.TempDir()
	cfg.Comparator = ComparatorZip

	m := NewManager(cfg, nil, discardLogger())
	require.NotNil(t, m)
	assert.Equal(t, cfg.UnsignedDir, m.Config().UnsignedDir)
	assert.Equal(t, DefaultRepoURL, m.Config().RepoURL)
}

func TestManager_VerifyEmptyDir(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultConfig()
	cfg.UnsignedDir = root
	cfg.TmpDir = root + "/tmp"

	m := NewManager(cfg, nil, discardLogger())
	summary, err := m.Verify(context.Background(), VerifyOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ExitCode())
	assert.Empty(t, summary.Artifacts)
}
