package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/materials-algorithms/common"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"matsci"}, args...))
	return out.String(), err
}

func TestWeibullCommand(t *testing.T) {
	out, err := run(t, "weibull", "--shape", "2", "--scale", "10", "--x", "10", "--p", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "8.8623")
	assert.Contains(t, out, "8.3255")
	assert.Contains(t, out, "FAILURE RATE")
	assert.Contains(t, out, "QUANTILE")

	_, err = run(t, "weibull", "--shape", "0", "--scale", "10")
	assert.True(t, errors.Is(err, common.ErrorDomain))

	_, err = run(t, "weibull", "--shape", "2", "--scale", "10", "--p", "1")
	assert.True(t, errors.Is(err, common.ErrorDomain))
}

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[16, 34, 53, 75, 93, 120]"), 0o600))

	out, err := run(t, "analyze", "--shape", "1.5", "--scale", "70", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PLOTTING POSITION")
	assert.Contains(t, out, "R SQUARED")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`[1, "x"]`), 0o600))
	_, err = run(t, "analyze", "--shape", "1.5", "--scale", "70", bad)
	assert.True(t, errors.Is(err, common.ErrorDataFormat))

	_, err = run(t, "analyze", "--shape", "1.5", "--scale", "70")
	assert.Error(t, err)
}

func TestDefectsCommand(t *testing.T) {
	out, err := run(t, "defects", "--unit", "eV", "--n", "8e28", "--qv", "0.9", "--t", "1273")
	require.NoError(t, err)
	assert.Contains(t, out, "VACANCIES")

	_, err = run(t, "defects", "--unit", "kcal", "--n", "8e28", "--qv", "0.9", "--t", "1273")
	assert.True(t, errors.Is(err, common.ErrorDomain))
}

func TestDiffusionCommand(t *testing.T) {
	out, err := run(t, "diffusion", "--unit", "J", "--d0", "2.3e-5", "--q", "148000", "--t", "1173")
	require.NoError(t, err)
	assert.Contains(t, out, "DIFFUSION COEFFICIENT")

	_, err = run(t, "diffusion", "--unit", "J", "--d0", "2.3e-5", "--q", "148000", "--t", "0")
	assert.True(t, errors.Is(err, common.ErrorDomain))
}

func TestGammaCommand(t *testing.T) {
	out, err := run(t, "gamma", "5", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "GAMMA(X)")

	_, err = run(t, "gamma", "--", "-2")
	assert.True(t, errors.Is(err, common.ErrorPole))

	_, err = run(t, "gamma")
	assert.Error(t, err)
}
