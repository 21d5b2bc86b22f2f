package server

import (
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig reads daemon settings from an optional config file plus
// CASEDESK_* environment variables, falling back to usable defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8087")
	v.SetDefault("db_path", "casedesk.db")
	v.SetDefault("default_page_size", 20)
	v.SetDefault("seed_demo", false)

	v.SetEnvPrefix("CASEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	} else {
		v.SetConfigName("casedeskd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/casedesk")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
