package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &aliasSourceOptions{}

	rootCmd := &cobra.Command{
		Use:           "lawlinks",
		Short:         "Поиск ссылок на статьи законов в русскоязычных текстах",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&opts.path, "aliases", envOr("ALIASES_PATH", "law_aliases.json"), "файл таблицы псевдонимов (JSON или YAML)")
	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv("ALIASES_DSN"), "DSN хранилища псевдонимов (sqlite://, postgres://)")

	rootCmd.AddCommand(newDetectCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newAliasesCmd(opts))

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
