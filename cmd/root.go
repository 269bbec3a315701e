package cmd

import (
	"fmt"
	"log/slog"
	"os"

	isacmd "github.com/Manu343726/tdesc/cmd/isa"
	"github.com/Manu343726/tdesc/cmd/tools"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logFile string
var verbose bool

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tdesc",
	Short: "Target register description tooling",
	Long: `tdesc models the register files of compiler targets: register banks, the
register classes sliced out of them, and the alias table binding identifiers to
concrete registers.

This CLI gives access to the shipped target descriptions and the code
generation tables derived from them (dumps, LLVM tablegen files, YAML exports).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(isacmd.IsaCmd, tools.ToolsCmd)
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write a structured log to the given file in addition to stderr")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(initConfig, initLogging)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tdesc" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tdesc")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogging configures the default slog logger: a text handler on stderr,
// fanned out to a JSON file handler when --log-file is set.
func initLogging() {
	level := slog.LevelWarn

	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if logFile == "" {
		logFile = viper.GetString("log_file")
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		cobra.CheckErr(err)

		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}
