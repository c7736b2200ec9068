package commands

import (
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/app"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/auth"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// CreateAdminCmd bootstraps an administrator account
func CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	email, _ := flags.GetString("email")
	name, _ := flags.GetString("name")
	password, _ := flags.GetString("password")

	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cc.close()

	tokens, err := auth.NewJWTTokenManager(&cc.cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token manager: %w", err)
	}

	authService, err := app.NewAuthService(cc.repos.Users, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, cc.log)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	admin, err := authService.CreateAccount(cmd.Context(), name, email, password, users.RoleAdmin, nil)
	if err != nil {
		return err
	}
	cc.log.Info("Created admin ", admin.Email, " with id ", admin.ID)
	return nil
}

// InitAccountCommands registers the account commands
func InitAccountCommands(rootCmd *cobra.Command) {
	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE:  CreateAdminCmd,
	}
	createAdminCmd.Flags().String("email", "", "Login email")
	createAdminCmd.Flags().String("name", "Administrator", "Display name")
	createAdminCmd.Flags().String("password", "", "Initial password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}
