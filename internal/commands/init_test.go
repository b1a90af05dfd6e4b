package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showinvestor-dev/showinvestor/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Acme Ventures"))

	// Config written with the business name and reports output dir.
	cfg, err := config.Load(filepath.Join(dir, "showinvestor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Ventures", cfg.Business.Name)
	assert.Equal(t, filepath.Join(dir, "reports"), cfg.Report.OutputDir)

	// Directory structure created.
	for _, d := range []string{"logs", "reports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
