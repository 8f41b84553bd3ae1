package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/walletive/backend/internal/application/usecase/setup"
)

func newStatusCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether onboarding has been completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			a, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			status, err := a.status.Execute(cmd.Context(), setup.GetStatusInput{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !status.Completed {
				fmt.Fprintln(out, "Primera vez: ejecuta 'walletive survey' para configurar tu cuenta.")
				return nil
			}

			fmt.Fprintf(out, "Usuario configurado: %s\n", status.DisplayName)
			if status.CompletedAt != nil {
				fmt.Fprintf(out, "Completado el %s\n", status.CompletedAt.Local().Format(time.DateTime))
			}
			if status.AlertThreshold != nil {
				fmt.Fprintf(out, "Alerta de gasto: %s%%\n", status.AlertThreshold.String())
			}
			return nil
		},
	}
}
