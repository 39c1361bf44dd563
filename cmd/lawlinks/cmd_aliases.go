package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lawlinks/aliases"
	"lawlinks/database"
)

func newAliasesCmd(opts *aliasSourceOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Работа с таблицей псевдонимов законов",
	}

	cmd.AddCommand(newAliasesImportCmd(opts))
	cmd.AddCommand(newAliasesLintCmd())

	return cmd
}

func newAliasesImportCmd(opts *aliasSourceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Заменить таблицу псевдонимов в хранилище содержимым файла",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dsn == "" {
				return fmt.Errorf("--dsn is required")
			}

			table, err := aliases.LoadFile(args[0])
			if err != nil {
				return err
			}

			store, err := database.NewAliasDB(opts.dsn)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ReplaceTable(cmd.Context(), table); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Импортировано законов: %d, псевдонимов: %d\n", table.Len(), table.AliasCount())
			return nil
		},
	}
}

func newAliasesLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Проверить таблицу псевдонимов на дубликаты и перекрытия",
		Long:  "Выводит дубликаты, псевдонимы, перекрытые более ранними, и совпадения основ. Завершается с ошибкой при дубликатах.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := aliases.LoadFile(args[0])
			if err != nil {
				return err
			}

			findings := aliases.Lint(table)
			out := cmd.OutOrStdout()
			for _, f := range findings {
				fmt.Fprintf(out, "%s\t%q (закон %s)\t%q (закон %s)\n", f.Kind, f.Alias, f.LawID, f.OtherAlias, f.OtherLawID)
			}

			if aliases.HasDuplicates(findings) {
				return fmt.Errorf("alias table %s has duplicate aliases", args[0])
			}
			if len(findings) == 0 {
				fmt.Fprintln(out, "✓ Замечаний нет")
			}
			return nil
		},
	}
}
