// Package cli comandos cobra de revenuectl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/revenue-api/pkg/config"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

// runtime configuración y logger compartidos por los subcomandos.
type runtime struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand comando raíz con migrate, sweep, seed y create-admin.
func NewRootCommand() *cobra.Command {
	rt := &runtime{}
	var logLevel string

	root := &cobra.Command{
		Use:           "revenuectl",
		Short:         "Tareas de operación de revenue-api",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.App.LogLevel
			if logLevel != "" {
				level = logLevel
			}
			rt.cfg = cfg
			rt.log = logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (sobrescribe LOG_LEVEL)")

	root.AddCommand(
		newMigrateCommand(rt),
		newSweepCommand(rt),
		newSeedCommand(rt),
		newCreateAdminCommand(rt),
	)
	return root
}
