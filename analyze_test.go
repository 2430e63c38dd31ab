package cvrp

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := smallInstance().Summarize()
	assert.Equal(t, "XML2_3111_01", s.Name)
	assert.Equal(t, 3, s.Dimension)
	assert.Equal(t, 2, s.SumDemands)
	assert.Equal(t, 1, s.MaxDemand)
	assert.Equal(t, 1, s.Vehicles)
	assert.Equal(t, 2.0, s.AvgRouteSize)
	want := 2 * (math.Hypot(12, 345) + math.Hypot(1000, 7)) / 4
	assert.InDelta(t, want, s.RadialBound, 1e-9)
}

func TestSummarizeMatchesGeneration(t *testing.T) {
	res, err := (&Generator{}).Run(params(60, 2, 2, 4, 3, 8))
	require.NoError(t, err)
	s := res.Instance.Summarize()
	assert.Equal(t, res.Stats.SumDemands, s.SumDemands)
	assert.Equal(t, res.Stats.MaxDemand, s.MaxDemand)
	assert.Equal(t, res.Stats.Vehicles, s.Vehicles)
	assert.Greater(t, s.RadialBound, 0.0)
}

func TestSummarizeWithoutCapacity(t *testing.T) {
	inst := smallInstance()
	inst.Capacity = 0
	s := inst.Summarize()
	assert.Equal(t, 2, s.SumDemands)
	assert.Zero(t, s.Vehicles)
	assert.Zero(t, s.RadialBound)
}

func TestReadVRPFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "small.vrp")
	require.NoError(t, os.WriteFile(plain, []byte(smallVRP), 0644))
	inst, err := ReadVRPFile(plain)
	require.NoError(t, err)
	assert.Equal(t, smallInstance(), inst)

	compressed := filepath.Join(dir, "small.vrp.sz")
	f, err := os.Create(compressed)
	require.NoError(t, err)
	w := snappy.NewBufferedWriter(f)
	_, err = w.Write([]byte(smallVRP))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	inst, err = ReadVRPFile(compressed)
	require.NoError(t, err)
	assert.Equal(t, smallInstance(), inst)

	broken := filepath.Join(dir, "broken.vrp")
	require.NoError(t, os.WriteFile(broken, []byte("NAME : x\n"), 0644))
	_, err = ReadVRPFile(broken)
	assert.True(t, errors.Is(err, ErrMalformedVRP))

	_, err = ReadVRPFile(filepath.Join(dir, "missing.vrp"))
	assert.Error(t, err)
}
