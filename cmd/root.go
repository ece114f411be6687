package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/jobmail/internal/classifier"
	"github.com/spigell/jobmail/internal/rules"
)

const (
	app       = "jobmail"
	envPrefix = "JOBMAIL"
)

type Config struct {
	Workers  int            `mapstructure:"workers" json:"workers" validate:"gte=0"`
	InputDir string         `mapstructure:"input-dir" json:"input-dir"`
	Filters  *FiltersConfig `mapstructure:"filters" json:"filters"`
	Rules    map[string]any `mapstructure:"rules" json:"rules,omitempty"`
}

type FiltersConfig struct {
	EventTypes      []string `mapstructure:"event-types" json:"event-types" validate:"dive,required"`
	MinConfidence   float64  `mapstructure:"min-confidence" json:"min-confidence" validate:"gte=0,lte=0.95"`
	SkipNewsletters bool     `mapstructure:"skip-newsletters" json:"skip-newsletters"`
	ExcludeSenders  []string `mapstructure:"exclude-senders" json:"exclude-senders" validate:"dive,required"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmail sorts job-search emails into application, interview, offer and rejection events",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmail.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("workers", 0)
	viper.SetDefault("input-dir", ".")
	viper.SetDefault("filters.event-types", []string{})
	viper.SetDefault("filters.min-confidence", 0.0)
	viper.SetDefault("filters.skip-newsletters", true)
	viper.SetDefault("filters.exclude-senders", []string{})
}

func initConfig() {
	// .env is optional; values already present in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %s", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Filters == nil {
		config.Filters = &FiltersConfig{}
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}

// newClassifier builds a classifier over the built-in rules extended with the
// rules section of the config.
func newClassifier(config *Config) (*classifier.Classifier, error) {
	if config == nil || len(config.Rules) == 0 {
		return classifier.New(nil), nil
	}

	overrides, err := rules.DecodeOverrides(config.Rules)
	if err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	rs, err := rules.Default().Extend(overrides)
	if err != nil {
		return nil, fmt.Errorf("extend rules: %w", err)
	}

	return classifier.New(rs), nil
}
