package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NivBraz/anagram-service/internal/app"
	"github.com/NivBraz/anagram-service/internal/config"
	"github.com/NivBraz/anagram-service/internal/models"
)

const appName = "anagram"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          appName + " [letters...]",
		Short:        appName + " - find every dictionary word made of the given letters",
		SilenceUsage: true,
		RunE:         runLookup,
	}

	cmd.Flags().StringP("config", "c", "config.yaml", "path of the configuration file")
	cmd.Flags().StringP("queries", "q", "", "file with one query per line, overrides sources.queriesFile")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	queriesFile, _ := cmd.Flags().GetString("queries")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if queriesFile != "" {
		cfg.Sources.QueriesFile = queriesFile
	}
	log.Printf("Configuration loaded from %s", configPath)

	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	queries, err := application.Queries(args)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries given")
	}

	results, err := application.Run(ctx, queries)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	return writeResults(cmd.OutOrStdout(), results, cfg.Output.PrettyPrint)
}

func writeResults(w io.Writer, results *models.Result, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return nil
}
