package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/revenue-api/internal/application/auth"
	"github.com/jhoicas/revenue-api/internal/bootstrap"
)

func newCreateAdminCommand(rt *runtime) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Crea un usuario con rol admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 8 {
				return fmt.Errorf("la contraseña debe tener al menos 8 caracteres")
			}
			ctx := cmd.Context()
			store, err := bootstrap.OpenStorage(ctx, rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer store.Close()

			uc := auth.NewAuthUseCase(store.Users, store.RefreshTokens, auth.JWTConfig{
				Secret: rt.cfg.JWT.Secret,
				Issuer: rt.cfg.JWT.Issuer,
			})
			if err := uc.CreateAdmin(ctx, username, password); err != nil {
				return fmt.Errorf("crear admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q creado\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Nombre de usuario")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña (mínimo 8 caracteres)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
