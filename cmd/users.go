package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThanakornKaingam/LannaVegWedNew/database"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/repository/postgres"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newSetRoleCmd())
	return cmd
}

func newSetRoleCmd() *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "set-role",
		Short: "Change the role of an existing user",
		Example: `  lannaveg users set-role --email somchai@example.com --role admin
  lannaveg users set-role --email somchai@example.com --role user`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := model.Role(strings.ToLower(strings.TrimSpace(role)))
			if !r.Valid() {
				return fmt.Errorf("unknown role %q, expected %q or %q", role, model.RoleUser, model.RoleAdmin)
			}
			addr := strings.ToLower(strings.TrimSpace(email))
			if addr == "" {
				return fmt.Errorf("--email is required")
			}

			return withDatabase(cmd.Context(), func(db *postgres.Connection) error {
				if err := database.Migrate(cmd.Context(), db.DB); err != nil {
					return err
				}

				user, err := postgres.NewUserRepository(db).SetRole(cmd.Context(), addr, r)
				if err != nil {
					return fmt.Errorf("failed to set role for %s: %w", addr, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Email, user.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user")
	cmd.Flags().StringVar(&role, "role", "", "new role: user or admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
