package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// errUsage marks argument errors so main prints them without an error kind.
var errUsage = errors.New("invalid usage")

var cfgFile string

// newRootCommand creates the root command
func newRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "milsearch",
		Short: "BM25 full-text search demo against a Milvus server",
		Long: `milsearch exercises the collection/data lifecycle of a Milvus server:
create a collection with a text schema and BM25 sparse index, insert
documents, run ranked full-text queries, and tear down.

The server topology (etcd + MinIO + Milvus) lives in docker-compose.yml;
start it with "docker compose up -d" before running any subcommand.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")

	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newLatencyCommand())
	rootCmd.AddCommand(newDatasetCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("milsearch %s (commit %s, built %s, %s)\n",
				version, commit, date, runtime.Version())
		},
	}
}
