// Package config loads the settings of the command-line tool and adapts them
// to telegram.Config.
//
// Values come from three layers, later ones overriding earlier ones: built-in
// defaults, an optional YAML file and TG_-prefixed environment variables.
// Because layers are merged, a layer can not reset a value to its zero value
// (an environment variable can not turn off a flag the file turned on).
package config

import (
	"os"
	"path/filepath"

	"github.com/amarnathcjd/tgloop/internal/utils"
)

const (
	DefaultDirName        = ".telegram-cli"
	DefaultAuthKeyFile    = "auth"
	DefaultStateFile      = "state"
	DefaultSecretChatFile = "secret"
	EnvPrefix             = "TG_"
)

type Config struct {
	// Directory relative file names are resolved against
	Dir            string `yaml:"dir" env:"DIR"`
	AuthKeyFile    string `yaml:"auth_key_file" env:"AUTH_KEY_FILE"`
	StateFile      string `yaml:"state_file" env:"STATE_FILE"`
	SecretChatFile string `yaml:"secret_chat_file" env:"SECRET_CHAT_FILE"`

	Phone     string `yaml:"phone" env:"PHONE"`
	FirstName string `yaml:"first_name" env:"FIRST_NAME"`
	LastName  string `yaml:"last_name" env:"LAST_NAME"`

	TestMode       bool `yaml:"test_mode" env:"TEST_MODE"`
	SyncFromStart  bool `yaml:"sync_from_start" env:"SYNC_FROM_START"`
	WaitDialogList bool `yaml:"wait_dialog_list" env:"WAIT_DIALOG_LIST"`
	// 0 keeps stored keys, 1 drops them and logs in again with the last
	// known phone, 2 only drops them
	ResetAuthorization int `yaml:"reset_authorization" env:"RESET_AUTHORIZATION"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

func defaults() *Config {
	dir := DefaultDirName
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, DefaultDirName)
	}
	return &Config{
		Dir:            dir,
		AuthKeyFile:    DefaultAuthKeyFile,
		StateFile:      DefaultStateFile,
		SecretChatFile: DefaultSecretChatFile,
		LogLevel:       "info",
	}
}

// resolve makes the three file names absolute, relative to Dir.
func (c *Config) resolve() {
	for _, p := range []*string{&c.AuthKeyFile, &c.StateFile, &c.SecretChatFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(c.Dir, *p)
		}
	}
}

func (c *Config) Level() utils.LogLevel {
	return utils.ParseLevel(c.LogLevel)
}
