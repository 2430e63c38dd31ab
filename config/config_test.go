package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Batch.DemandTypes, 7)
	assert.Len(t, cfg.Batch.RouteSizes, 6)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "gen.toml", `
[batch]
sizes = [50, 200]
cust_pos = [2]
count = 3
base_seed = 42
stream = "go"
workers = 8
out_dir = "out"
compress = true

[server]
addr = ":9090"
max_n = 500
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 200}, cfg.Batch.Sizes)
	assert.Equal(t, []int{2}, cfg.Batch.CustPos)
	assert.Equal(t, []int{1, 2, 3}, cfg.Batch.RootPos, "unset lists keep defaults")
	assert.Equal(t, 3, cfg.Batch.Count)
	assert.Equal(t, int64(42), cfg.Batch.BaseSeed)
	assert.Equal(t, "go", cfg.Batch.Stream)
	assert.True(t, cfg.Batch.Compress)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 500, cfg.Server.MaxN)
	assert.Equal(t, "python", cfg.Server.Stream)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "gen.yaml", `
batch:
  sizes: [100]
  demand_types: [6, 7]
  route_sizes: [1]
  out_dir: /tmp/xml
  json: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, cfg.Batch.DemandTypes)
	assert.Equal(t, []int{1}, cfg.Batch.RouteSizes)
	assert.True(t, cfg.Batch.JSON)
	assert.Equal(t, "/tmp/xml", cfg.Batch.OutDir)
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := writeFile(t, "bad.toml", `
[batch]
demand_types = [0, 8]
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DemandTypes")
}

func TestLoadRejectsUnknownStream(t *testing.T) {
	path := writeFile(t, "bad.yml", "batch:\n  stream: pcg\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stream")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "conf.json", "{}"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.toml", "[batch\nsizes = "))
	assert.Error(t, err)
}

func TestBatchValidate(t *testing.T) {
	b := Default().Batch
	require.NoError(t, b.Validate())
	b.Workers = 0
	assert.Error(t, b.Validate())
}
