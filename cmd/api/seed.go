package main

import (
	"github.com/sampleemps-api/internal/seed"
	"github.com/spf13/cobra"
)

var (
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load sample departments, job titles and employees",
		RunE:  runSeed,
	}
	clearData bool
)

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "clear existing data before seeding")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.migrate(false); err != nil {
		return err
	}

	seeder := seed.NewSeeder(a.db, a.empService, a.jobService, a.deptService, a.logger)
	return seeder.Run(cmd.Context(), clearData)
}
