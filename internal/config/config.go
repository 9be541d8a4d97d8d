package config

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefix for environment variable overrides, e.g.
// UPSCANNER_SCAN_TIMEOUT=5m
const EnvPrefix = "UPSCANNER"

// Nmap represents the configuration of the nmap collaborator
type Nmap struct {
	BinaryPath string `yaml:"binary-path" mapstructure:"binary-path"`
}

// Scan represents per subnet scan settings
type Scan struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// History represents run history storage settings
type History struct {
	Disabled bool   `yaml:"disabled" mapstructure:"disabled"`
	File     string `yaml:"file" mapstructure:"file"`
}

// Log represents logging settings
type Log struct {
	File string `yaml:"file" mapstructure:"file"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Nmap    Nmap    `yaml:"nmap" mapstructure:"nmap"`
	Scan    Scan    `yaml:"scan" mapstructure:"scan"`
	History History `yaml:"history" mapstructure:"history"`
	Log     Log     `yaml:"log" mapstructure:"log"`
}

// Default returns the default configuration using run-time paths
// shared through viper
func Default() *Config {
	dbFile, _ := viper.Get("database-file").(string)
	logFile, _ := viper.Get("log-file").(string)

	return &Config{
		Nmap: Nmap{
			BinaryPath: "",
		},
		Scan: Scan{
			Timeout: 0,
		},
		History: History{
			Disabled: false,
			File:     dbFile,
		},
		Log: Log{
			File: logFile,
		},
	}
}

// Bind registers every config key on v so environment overrides resolve
func Bind(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("nmap.binary-path", "")
	v.SetDefault("scan.timeout", time.Duration(0))
	v.SetDefault("history.disabled", false)
	v.SetDefault("history.file", "")
	v.SetDefault("log.file", "")
}

// New returns the configuration resolved from flags and env bound to v,
// the yaml file at confPath and finally defaults. A missing file is only
// an error when mustExist is set.
func New(v *viper.Viper, confPath string, mustExist bool) (*Config, error) {
	Bind(v)

	if confPath != "" {
		_, err := os.Stat(confPath)

		switch {
		case err == nil:
			v.SetConfigFile(confPath)

			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist) && !mustExist:
			// fall through to defaults
		default:
			return nil, err
		}
	}

	conf := Config{}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Encode writes conf as yaml to w
func Encode(conf Config, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(conf); err != nil {
		return err
	}

	return encoder.Close()
}

// Write encodes conf as yaml to path
func Write(conf Config, path string) error {
	file, err := os.Create(path)

	if err != nil {
		return err
	}

	defer file.Close()

	return Encode(conf, file)
}
