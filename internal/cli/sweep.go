package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/revenue-api/internal/application/sweeper"
	"github.com/jhoicas/revenue-api/internal/bootstrap"
)

func newSweepCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Ejecuta un barrido de contratos vencidos sin firmar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := bootstrap.OpenStorage(ctx, rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer store.Close()

			res, err := sweeper.New(store.TxRunner, 0, rt.log).SweepOnce(ctx)
			if err != nil {
				return fmt.Errorf("barrido: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "contratos desactivados: %d, pagos reembolsados: %d\n", res.Deactivated, res.Refunded)
			return nil
		},
	}
}
