// Package main provides the gsheet command line client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/spf13/cobra"
	"github.com/ukaji3/gsheet-go/internal/config"
	"github.com/ukaji3/gsheet-go/pkg/gsheet"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/auth"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/output"
)

var (
	verbose zlog.VerboseVar
	logger  = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()
)

var (
	spreadsheetID   string
	credentialsFile string
	token           string
	envFile         string
	pretty          bool

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gsheet",
		Short: "Read and write Google Sheets",
		Long: `gsheet reads sheet values as addressed cells, writes ranges and
exports sheets to JSON, CSV, XLSX or Parquet.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&spreadsheetID, "spreadsheet", "", "Spreadsheet id (env "+config.EnvSpreadsheetID+")")
	pf.StringVar(&credentialsFile, "credentials", "", "Service account key file (env "+config.EnvCredentials+")")
	pf.StringVar(&token, "token", "", "Pre-issued access token (env "+config.EnvToken+")")
	pf.StringVar(&envFile, "env-file", "", "Read settings from this file instead of .env")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	gfs := flag.NewFlagSet("gsheet", flag.ContinueOnError)
	gfs.Var(&verbose, "v", "logging verbosity")
	pf.AddGoFlagSet(gfs)

	rootCmd.AddCommand(
		newInfoCmd(),
		newValuesCmd(),
		newCellsCmd(),
		newUpdateCmd(),
		newExportCmd(),
		newDumpCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	c, err := config.Load(files...)
	if err != nil {
		return err
	}
	if spreadsheetID != "" {
		c.SpreadsheetID = spreadsheetID
	}
	if credentialsFile != "" {
		c.CredentialsFile = credentialsFile
	}
	if token != "" {
		c.Token = token
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// openSpreadsheet builds an authenticated client for the configured spreadsheet.
func openSpreadsheet(ctx context.Context) (*gsheet.Spreadsheet, error) {
	var ts auth.TokenSource
	if cfg.CredentialsFile != "" {
		sa, err := auth.NewServiceAccountFromFile(ctx, cfg.CredentialsFile, auth.ServiceAccountOptions{
			Scope:  cfg.Scope,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
		ts = sa
	} else {
		ts = auth.StaticToken(cfg.Token)
	}

	client, err := gsheet.NewClient(ts, gsheet.Options{
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		Logger:         logger,
		MaxConcurrency: cfg.MaxConcurrency,
	})
	if err != nil {
		return nil, err
	}
	return client.Spreadsheet(cfg.SpreadsheetID), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
