package main

import (
	"fmt"
	"os"

	"github.com/gartstein/techjobs/internal/techjobs/seed"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load employers, skills and jobs from YAML fixtures",
	Long: "Load employers, skills and jobs from YAML fixtures in one transaction.\n" +
		"Records that already exist by name are skipped. Without --file the bundled fixtures are used.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fixtures, err := loadFixtures(seedFile)
		if err != nil {
			return err
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

		result, err := seed.NewSeeder(repo, a.logger).Run(cmd.Context(), fixtures)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		cmd.Printf("seeded %d employers, %d skills, %d jobs (%d skipped)\n",
			result.Employers, result.Skills, result.Jobs, result.Skipped)
		return nil
	},
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixtures file")
	rootCmd.AddCommand(seedCmd)
}
