package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eringen/techinsights"
)

var (
	cfgFile    string
	siteConfig techinsights.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "techinsights",
	Short: "Tech Insights - a server-rendered blog",
	Long: `techinsights serves a blog of markdown posts with Echo and templ,
or exports the whole site as static files.

Settings are read from ./config.yaml (or --config), then TECHINSIGHTS_*
environment variables, then command-line flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetHeader("${time_rfc3339} ${level}")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "log at debug level")
	rootCmd.PersistentFlags().String("url", "", "canonical site URL")
	rootCmd.PersistentFlags().String("content", "", "directory of markdown posts (default: built-in posts)")
	rootCmd.PersistentFlags().String("render-mode", "", `post rendering: "structured" or "naive"`)

	rootCmd.AddCommand(serveCmd, buildCmd, newCmd, versionCmd)
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"debug":      "debug",
	"url":        "url",
	"contentDir": "content",
	"renderMode": "render-mode",
	"addr":       "addr",
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault("name", "Tech Insights")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("authorBio", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("contentDir", "")
	v.SetDefault("renderMode", "structured")
	v.SetDefault("searchLimit", 30)
	v.SetDefault("searchWindow", time.Minute)
	v.SetDefault("debug", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TECHINSIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if err := bindFlag(v, key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		log.Debug("no config file found, using defaults and environment")
	} else {
		log.Infof("using config file %s", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&siteConfig); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if siteConfig.Debug {
		log.SetLevel(log.DEBUG)
	} else {
		log.SetLevel(log.INFO)
	}
	return nil
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) error {
	if f == nil {
		return nil
	}
	return v.BindPFlag(key, f)
}
