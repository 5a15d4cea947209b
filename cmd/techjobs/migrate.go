package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the employer, skill, job and job_skills tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		cmd.Printf("schema is up to date (%s)\n", a.cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
