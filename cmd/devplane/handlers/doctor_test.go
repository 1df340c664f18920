package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/pricing"
	"github.com/devplane/devplane/internal/store"
)

// seedSnapshot stores the builtin table so the pricing check passes.
func seedSnapshot(t *testing.T) {
	t.Helper()
	db, err := openStore()
	require.NoError(t, err)
	_, err = store.NewSnapshotRepository(db).Save(context.Background(), pricing.DefaultTable(), store.SourceBuiltin)
	require.NoError(t, err)
}

func TestDoctor_AllChecksPass(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	useTempStore(t)
	seedSnapshot(t)
	path := writeTestConfig(t, devConfigYAML)

	fake := &fakeBucketClient{exists: true, versioned: true}
	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		return fake, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Doctor(context.Background(), path, false))
	})

	assert.Contains(t, output, "devplane doctor: coder/dev")
	assert.Contains(t, output, "configuration")
	assert.Contains(t, output, "credentials")
	assert.Contains(t, output, "state bucket")
	assert.Contains(t, output, "pricing data")
	assert.NotContains(t, output, "❌")
}

func TestDoctor_MissingCredentials(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	lookupEnv = func(string) string { return "" }

	var err error
	output := captureOutput(func() {
		err = Doctor(context.Background(), path, false)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 checks failed")
	assert.Contains(t, output, "SCW_ACCESS_KEY")
	// The bucket check is skipped, not failed, without credentials.
	assert.Contains(t, output, "skipped")
}

func TestDoctor_BucketNotBootstrapped(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	useTempStore(t)
	seedSnapshot(t)
	path := writeTestConfig(t, devConfigYAML)

	fake := &fakeBucketClient{exists: false}
	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		return fake, nil
	}

	// A missing bucket is a warning, not a failure.
	output := captureOutput(func() {
		require.NoError(t, Doctor(context.Background(), path, false))
	})

	assert.Contains(t, output, "not created yet")
	assert.Contains(t, output, "devplane bootstrap")
}

func TestDoctor_JSON(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	fake := &fakeBucketClient{exists: true, versioned: true}
	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		return fake, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Doctor(context.Background(), path, true))
	})

	var report doctorReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))

	// No snapshot stored, so pricing warns and the report is warn overall.
	assert.Equal(t, CheckWarn, report.Status)
	require.Len(t, report.Checks, 4)
	assert.Equal(t, "configuration", report.Checks[0].Name)
	assert.Equal(t, CheckPass, report.Checks[0].Status)
	assert.Equal(t, CheckWarn, report.Checks[3].Status)
}

func TestDoctor_InvalidConfig(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	useTempStore(t)
	path := writeTestConfig(t, `project: coder
environment: qa
`)

	var err error
	output := captureOutput(func() {
		err = Doctor(context.Background(), path, false)
	})

	require.Error(t, err)
	assert.Contains(t, output, "qa")
	assert.Contains(t, output, "devplane doctor")
}

func TestWorstStatus(t *testing.T) {
	tests := []struct {
		name   string
		checks []CheckResult
		want   string
	}{
		{
			name:   "all pass",
			checks: []CheckResult{{Status: CheckPass}, {Status: CheckPass}},
			want:   CheckPass,
		},
		{
			name:   "warn beats pass",
			checks: []CheckResult{{Status: CheckPass}, {Status: CheckWarn}},
			want:   CheckWarn,
		},
		{
			name:   "fail beats warn",
			checks: []CheckResult{{Status: CheckWarn}, {Status: CheckFail}, {Status: CheckPass}},
			want:   CheckFail,
		},
		{
			name:   "empty",
			checks: nil,
			want:   CheckPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, worstStatus(tt.checks))
		})
	}
}
