package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lawlinks/export"
)

func newExportCmd(opts *aliasSourceOptions) *cobra.Command {
	var out string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Найти ссылки в документе и сохранить их в файл (xlsx, csv, json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "" {
				outputFormat = strings.TrimPrefix(filepath.Ext(out), ".")
			}
			format, err := export.ParseFormat(outputFormat)
			if err != nil {
				return err
			}

			links, err := scanDocument(cmd.Context(), opts, args[0], cmd.InOrStdin(), true)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := export.Write(f, format, links); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d ссылок сохранено в %s\n", len(links), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "links.xlsx", "файл результата")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "формат: xlsx, csv, json (по умолчанию по расширению --out)")

	return cmd
}
