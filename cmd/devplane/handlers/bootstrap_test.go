package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devplane/devplane/internal/config"
	devplaneerrors "github.com/devplane/devplane/internal/errors"
)

// fakeBucketClient implements stateBucketClient for tests.
type fakeBucketClient struct {
	exists     bool
	versioned  bool
	createErr  error
	headErr    error
	ensured    []string
	versioning []string
}

func (f *fakeBucketClient) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.exists, f.headErr
}

func (f *fakeBucketClient) EnsureStateBucket(_ context.Context, name string) (bool, error) {
	if f.createErr != nil {
		return false, f.createErr
	}
	f.ensured = append(f.ensured, name)
	created := !f.exists
	f.exists = true
	return created, nil
}

func (f *fakeBucketClient) EnableVersioning(_ context.Context, name string) error {
	f.versioning = append(f.versioning, name)
	f.versioned = true
	return nil
}

func (f *fakeBucketClient) VersioningEnabled(_ context.Context, _ string) (bool, error) {
	return f.versioned, nil
}

// saveAndRestoreBootstrapFactories saves and restores bootstrap factories.
func saveAndRestoreBootstrapFactories(t *testing.T) {
	origNewClient := newStateBucketClient
	origLookupEnv := lookupEnv

	t.Cleanup(func() {
		newStateBucketClient = origNewClient
		lookupEnv = origLookupEnv
	})
}

// stubCredentials makes both Scaleway credentials available.
func stubCredentials(t *testing.T) {
	t.Helper()
	lookupEnv = func(key string) string {
		switch key {
		case "SCW_ACCESS_KEY":
			return "SCWTESTACCESS"
		case "SCW_SECRET_KEY":
			return "test-secret"
		default:
			return ""
		}
	}
}

func TestBootstrap_CreatesBucket(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	path := writeTestConfig(t, devConfigYAML)

	fake := &fakeBucketClient{}
	var gotRegion config.Region
	newStateBucketClient = func(region config.Region, _, _ string) (stateBucketClient, error) {
		gotRegion = region
		return fake, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Bootstrap(context.Background(), path, false))
	})

	assert.Equal(t, config.RegionParis, gotRegion)
	assert.Equal(t, []string{"terraform-state-coder-dev"}, fake.ensured)
	assert.Equal(t, []string{"terraform-state-coder-dev"}, fake.versioning)
	assert.Contains(t, output, "Created state bucket terraform-state-coder-dev")
	assert.Contains(t, output, "Object versioning enabled")
	assert.Contains(t, output, `bucket   = "terraform-state-coder-dev"`)
	assert.Contains(t, output, "https://s3.fr-par.scw.cloud")
}

func TestBootstrap_Idempotent(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	path := writeTestConfig(t, devConfigYAML)

	fake := &fakeBucketClient{exists: true, versioned: true}
	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		return fake, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Bootstrap(context.Background(), path, false))
	})

	assert.Contains(t, output, "already exists")
	assert.NotContains(t, output, "Created state bucket")
}

func TestBootstrap_DryRun(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	path := writeTestConfig(t, devConfigYAML)

	// No credentials and no client factory: a dry run must not need either.
	lookupEnv = func(string) string { return "" }
	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		t.Fatal("dry run must not build a client")
		return nil, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Bootstrap(context.Background(), path, true))
	})

	assert.Contains(t, output, "Dry run")
	assert.Contains(t, output, "terraform-state-coder-dev")
}

func TestBootstrap_MissingCredentials(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	path := writeTestConfig(t, devConfigYAML)

	lookupEnv = func(string) string { return "" }

	err := Bootstrap(context.Background(), path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCW_ACCESS_KEY")
}

func TestBootstrap_NameCollision(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	path := writeTestConfig(t, devConfigYAML)

	fake := &fakeBucketClient{
		createErr: devplaneerrors.NameCollision("state bucket", "terraform-state-coder-dev"),
	}
	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		return fake, nil
	}

	err := Bootstrap(context.Background(), path, false)
	require.Error(t, err)
	assert.Equal(t, devplaneerrors.TypeNameCollision, devplaneerrors.TypeOf(err))
}

func TestScalewayCredentials(t *testing.T) {
	saveAndRestoreBootstrapFactories(t)

	t.Run("both present", func(t *testing.T) {
		stubCredentials(t)
		access, secret, err := scalewayCredentials()
		require.NoError(t, err)
		assert.Equal(t, "SCWTESTACCESS", access)
		assert.Equal(t, "test-secret", secret)
	})

	t.Run("secret missing", func(t *testing.T) {
		lookupEnv = func(key string) string {
			if key == "SCW_ACCESS_KEY" {
				return "SCWTESTACCESS"
			}
			return ""
		}
		_, _, err := scalewayCredentials()
		require.Error(t, err)
	})
}

func TestBootstrap_ClientError(t *testing.T) {
	saveAndRestoreFactories(t)
	saveAndRestoreBootstrapFactories(t)
	stubCredentials(t)
	path := writeTestConfig(t, devConfigYAML)

	newStateBucketClient = func(_ config.Region, _, _ string) (stateBucketClient, error) {
		return nil, errors.New("endpoint unreachable")
	}

	err := Bootstrap(context.Background(), path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint unreachable")
}
