package main

import (
	"github.com/spf13/cobra"

	"lawlinks/export"
)

func newDetectCmd(opts *aliasSourceOptions) *cobra.Command {
	var outputFormat string
	var normalize bool

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Найти ссылки в документе и вывести их в stdout",
		Long:  "Читает текст или HTML из файла (или stdin, если файл не указан) и выводит найденные ссылки.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(outputFormat)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			links, err := scanDocument(cmd.Context(), opts, path, cmd.InOrStdin(), normalize)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), format, links)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "формат вывода: json, csv")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "привести текст к NFC и удалить невидимые символы")

	return cmd
}
