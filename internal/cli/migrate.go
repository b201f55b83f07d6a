package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/revenue-api/internal/infrastructure/postgres"
	"github.com/jhoicas/revenue-api/pkg/config"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		Long: `Aplica en orden los scripts embebidos en internal/infrastructure/postgres/migrations.
Cada script corre en su propia transacción y queda registrado en schema_migrations.
Solo aplica con STORAGE_DRIVER=postgres.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.cfg.Storage.Driver != config.StoragePostgres {
				return fmt.Errorf("migrate requiere STORAGE_DRIVER=postgres (actual: %s)", rt.cfg.Storage.Driver)
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, rt.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones pendientes")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "aplicada %s\n", name)
			}
			return nil
		},
	}
}
