package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/registry-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/jobs"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/seed"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
	"github.com/GoSim-25-26J-441/registry-backend/internal/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the registry tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := bootstrap.OpenDB(cmd.Context(), bootstrap.DBOptions{DSN: cfg.Database.DSN(), MaxConns: 2})
		if err != nil {
			return err
		}
		defer pool.Close()
		return postgres.Migrate(cmd.Context(), pool)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample institution, user and project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stores, err := bootstrap.OpenStores(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer stores.Close()

		created, err := seed.DefaultData(cmd.Context(), stores.Institutions, stores.Users, stores.Projects, clock.Today())
		if err != nil {
			return err
		}
		if created {
			fmt.Println("Sample data loaded")
		} else {
			fmt.Println("Sample data already present")
		}
		return nil
	},
}

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List projects past their end date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stores, err := bootstrap.OpenStores(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer stores.Close()

		sweep := jobs.NewOverdueSweep(service.NewProjectService(stores.Projects, clock))
		overdue, err := sweep.Run(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range overdue {
			fmt.Printf("%d\t%s\t%s\t%d\n", p.ID, p.Name, p.EndDate, p.DaysLeft)
		}
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the overdue sweep on a cron schedule until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		stores, err := bootstrap.OpenStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer stores.Close()

		spec, _ := cmd.Flags().GetString("spec")
		if spec == "" {
			spec = cfg.Jobs.OverdueCron
		}

		sweep := jobs.NewOverdueSweep(service.NewProjectService(stores.Projects, clock))
		scheduler := jobs.NewScheduler(sweep, clock.Location)
		if err := scheduler.Start(spec); err != nil {
			return err
		}

		<-ctx.Done()
		<-scheduler.Stop().Done()
		return nil
	},
}

func init() {
	scheduleCmd.Flags().String("spec", "", "cron spec with seconds (defaults to OVERDUE_CRON, then nightly)")
}
