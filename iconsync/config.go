package iconsync

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var errNoIcons = errors.New("no icons configured")

const (
	TextLogFormat = "text"
	JSONLogFormat = "json"
)

// IconEntry maps an icon source stem (short file name, e.g. "ns") to the
// key it is exposed under in the generated block (e.g. "nintendo").
type IconEntry struct {
	Stem string `mapstructure:"stem"`
	Key  string `mapstructure:"key"`
}

// Config is the full configuration of a generation run. It is loaded once
// at startup and treated as immutable afterwards.
type Config struct {
	SourceDir  string
	TargetFile string
	Target     Target
	Icons      []IconEntry
	LogLevel   string
}

// LoadConfig initializes viper with the iconsync defaults and, when
// present, an iconsync.yaml config file. The defaults are a complete
// configuration, so a missing config file is not an error.
func LoadConfig(path string) error {
	viper.SetConfigName("iconsync")
	if path == "" {
		viper.AddConfigPath(".")
	} else {
		viper.AddConfigPath(path)
	}

	viper.SetEnvPrefix("iconsync")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("source_dir", "assets/icons")
	viper.SetDefault("target_file", "icons.js")
	viper.SetDefault("markers.begin", "  // BEGIN GENERATED ICONS (iconsync)")
	viper.SetDefault("markers.end", "  // END GENERATED ICONS")
	viper.SetDefault("icons", defaultIcons())

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", TextLogFormat)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}

// GetConfig materializes the loaded viper state into a Config.
func GetConfig() (Config, error) {
	var icons []IconEntry
	if err := viper.UnmarshalKey("icons", &icons); err != nil {
		return Config{}, fmt.Errorf("decoding icons mapping: %w", err)
	}

	if len(icons) == 0 {
		return Config{}, errNoIcons
	}

	for _, icon := range icons {
		if icon.Stem == "" || icon.Key == "" {
			return Config{}, fmt.Errorf("icon mapping entry needs both stem and key, got stem=%q key=%q", icon.Stem, icon.Key)
		}
	}

	return Config{
		SourceDir:  viper.GetString("source_dir"),
		TargetFile: viper.GetString("target_file"),
		Target: Target{
			Begin: viper.GetString("markers.begin"),
			End:   viper.GetString("markers.end"),
		},
		Icons:    icons,
		LogLevel: viper.GetString("log.level"),
	}, nil
}

func defaultIcons() []map[string]string {
	return []map[string]string{
		{"stem": "ns", "key": "nintendo"},
		{"stem": "ps", "key": "playstation"},
		{"stem": "xbox", "key": "xbox"},
	}
}
