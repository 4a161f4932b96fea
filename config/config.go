// Package config registers printstack settings and binds them to viper.
//
// Settings come, in order of precedence, from flags, PRINTSTACK_* environment
// variables, the TOML file under where.Config and the registered defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/filesystem"
	"github.com/printstack/printstack/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a setting key into the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds every registered field and reads the config file if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Printstack)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Printstack)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for k, f := range Default {
		viper.SetDefault(k, f.Value)
		viper.MustBindEnv(k)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// Save writes the current settings to the config file, creating it when missing.
func Save() error {
	var notFound viper.ConfigFileNotFoundError
	err := viper.WriteConfig()
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Delete removes the config file.
func Delete() error {
	return filesystem.API().Remove(where.ConfigFile())
}
