package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// ErrConfigRead indicates the client config file could not be read.
var ErrConfigRead = errors.New("client config unreadable")

// ErrConfigParse indicates the client config contents were malformed.
var ErrConfigParse = errors.New("client config malformed")

// GameInfo identifies the deployment the config was generated for.
type GameInfo struct {
	Name string `yaml:"name"`
}

// FeatureSettings is the decoded settings block for one deployed feature.
// Feature sections are free-form maps in the file; known keys are decoded
// into fields and everything else is kept in Attributes.
type FeatureSettings struct {
	Enabled    bool           `mapstructure:"enabled"`
	Endpoint   string         `mapstructure:"endpoint"`
	Region     string         `mapstructure:"region"`
	Attributes map[string]any `mapstructure:",remain"`
}

// clientConfigFile is the raw YAML shape of the generated client config.
type clientConfigFile struct {
	Game        GameInfo                  `yaml:"game"`
	Environment string                    `yaml:"environment"`
	Features    map[string]map[string]any `yaml:"features"`
}

// ClientConfig is the parsed client configuration: settings for each feature
// that has been deployed, regenerated on every deployment.
type ClientConfig struct {
	Game        GameInfo
	Environment string
	Features    map[domain.Feature]FeatureSettings
}

// ParseConfig parses client config contents.
func ParseConfig(data []byte) (*ClientConfig, error) {
	var raw clientConfigFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := &ClientConfig{
		Game:        raw.Game,
		Environment: raw.Environment,
		Features:    make(map[domain.Feature]FeatureSettings, len(raw.Features)),
	}

	for name, section := range raw.Features {
		var settings FeatureSettings
		if err := mapstructure.Decode(section, &settings); err != nil {
			return nil, fmt.Errorf("%w: feature %q: %v", ErrConfigParse, name, err)
		}
		cfg.Features[domain.Feature(name)] = settings
	}

	return cfg, nil
}

// LoadConfig reads and parses a client config file.
func LoadConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}
	return ParseConfig(data)
}
