package app

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/feedback-hub/internal/db"
	"github.com/BruksfildServices01/feedback-hub/internal/infra/repository"
	"github.com/BruksfildServices01/feedback-hub/internal/seed"
)

var seedOpts seed.Options

func init() { //nolint: gochecknoinits
	seedCmd.Flags().StringVar(&seedOpts.AdminEmail, "admin-email", seed.DefaultAdminEmail, "Email of the provisioned admin")
	seedCmd.Flags().StringVar(&seedOpts.AdminPassword, "admin-password", seed.DefaultAdminPassword, "Password of the provisioned admin")
	seedCmd.Flags().BoolVar(&seedOpts.SampleData, "sample-data", true, "Add demo stores and reviews to an empty catalog")

	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the admin user, default settings and demo data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		seeder := seed.New(
			repository.NewUserGormRepository(db),
			repository.NewStoreGormRepository(db),
			repository.NewReviewGormRepository(db),
			repository.NewSettingsGormRepository(db),
			log,
		)

		res, err := seeder.Run(cmd.Context(), seedOpts)
		if err != nil {
			return err
		}

		log.Info().
			Str("admin", res.AdminEmail).
			Bool("admin_created", res.AdminCreated).
			Int("stores", res.Stores).
			Int("reviews", res.Reviews).
			Msg("seed complete")
		return nil
	},
}
