package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	projectRoot string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "px-valet",
	Short: "Run a project on Laravel Valet with docker services next to it",
	Long: `px-valet links and secures the project domains with Laravel Valet and
generates a docker compose file for the databases, caches and mail capture
the project needs.

Start with: px-valet configure && px-valet init`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors not already shown by a command are
// printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !environment.IsReported(err) {
		fmt.Fprint(os.Stderr, ui.FormatError(err.Error(), "", "run 'px-valet --help' for usage"))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: px-valet.yml in the project root)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", "", "project root (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.Name)
		viper.SetConfigType("yml")
		viper.AddConfigPath(rootDir())
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// rootDir returns the project root the commands work on.
func rootDir() string {
	if projectRoot != "" {
		return projectRoot
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
