package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sqlFile string

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Run a SQL maintenance script such as queries.sql",
	RunE: func(cmd *cobra.Command, _ []string) error {
		script, err := os.ReadFile(sqlFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		repo, err := a.connectDB()
		if err != nil {
			return err
		}
		defer repo.Close()

		n, err := repo.ExecScript(cmd.Context(), string(script))
		if err != nil {
			return fmt.Errorf("%s: %w", sqlFile, err)
		}
		cmd.Printf("executed %d statements from %s\n", n, sqlFile)
		return nil
	},
}

func init() {
	sqlCmd.Flags().StringVarP(&sqlFile, "file", "f", "", "SQL script to execute")
	_ = sqlCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(sqlCmd)
}
