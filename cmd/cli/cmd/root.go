// Package cmd provides the CLI commands for sms-cost.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sms-cost/internal/config"
	"sms-cost/internal/logging"
)

// Version is the tool version, overridden at link time
var Version = "0.1.0"

var (
	cfgFile      string
	envFile      string
	verbose      bool
	priceSource  string
	priceFiles   []string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sms-cost",
	Short: "Estimate the cost of sending SMS messages",
	Long: `sms-cost counts GSM-7 and UCS-2 segments and prices SMS messages
against a per-country price list.

Examples:
  sms-cost segments "Hello world"
  sms-cost estimate --from +4917111111 --to +491755555555 --body "Hi"
  sms-cost estimate --to +4917... --to +3361... --file body.txt --format json
  sms-cost prices --price-file overrides.hcl`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sms-cost.json)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with SMSCOST_* variables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&priceSource, "price-source", "", "price source (offline, file, url)")
	rootCmd.PersistentFlags().StringSliceVar(&priceFiles, "price-file", nil, "price list file (vendor JSON or .hcl), applied in order")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	rootCmd.AddCommand(versionCmd)
}

// initConfig layers defaults, the config file, the environment and flags
func initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if priceSource != "" {
		cfg.Pricing.Source = priceSource
	}
	if len(priceFiles) > 0 {
		cfg.Pricing.Files = priceFiles
	}
	if outputFormat != "" {
		cfg.Output.DefaultFormat = outputFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error initializing logging: %v\n", err)
	}

	config.Set(cfg)
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sms-cost version %s\n", Version)
	},
}
