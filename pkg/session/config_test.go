package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

const validConfig = `game:
  name: sample
environment: dev
features:
  identity:
    enabled: true
    endpoint: https://identity.example.com
    region: us-west-2
    user_pool_id: us-west-2_abc123
  achievements:
    enabled: false
    endpoint: https://achievements.example.com
    region: us-west-2
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "sample", cfg.Game.Name)
	assert.Equal(t, "dev", cfg.Environment)
	require.Len(t, cfg.Features, 2)

	identity := cfg.Features[domain.FeatureIdentity]
	assert.True(t, identity.Enabled)
	assert.Equal(t, "https://identity.example.com", identity.Endpoint)
	assert.Equal(t, "us-west-2", identity.Region)
	// Unknown keys land in Attributes.
	assert.Equal(t, "us-west-2_abc123", identity.Attributes["user_pool_id"])

	achievements := cfg.Features[domain.FeatureAchievements]
	assert.False(t, achievements.Enabled)
}

func TestParseConfig_MalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("features:\n  - [broken"))
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestParseConfig_EmptyContents(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Features)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientConfig.yml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", cfg.Game.Name)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, ErrConfigRead)
}
