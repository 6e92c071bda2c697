// Package cli implements the commontags command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/juho05/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *Config
)

var rootCmd = &cobra.Command{
	Use:   "commontags",
	Short: "Read audio tags into one canonical key space",
	Long: `commontags reads the tags of audio files (ID3, Vorbis comments, APEv2,
iTunes atoms, RIFF INFO, AIFF chunks and more) and maps them onto a single
set of canonical keys.

Configuration is read from $HOME/.commontags.yaml (or --config), from
COMMONTAGS_* environment variables and from a .env file in the working
directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command. An interrupt cancels the command's
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.commontags.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warning", "log level: none, fatal, error, warning, info, trace")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().Bool("taglib", true, "use the TagLib fallback for formats without a native parser")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("taglib", rootCmd.PersistentFlags().Lookup("taglib"))
}

func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".commontags")
	}

	viper.SetEnvPrefix("COMMONTAGS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}
}

func setup() error {
	c, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	sev, err := parseSeverity(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetSeverity(sev)
	log.Tracef("using config file %q", viper.ConfigFileUsed())
	cfg = c
	return nil
}
