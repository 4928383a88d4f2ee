package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"orgsite-backend/internal/config"
	"orgsite-backend/internal/domains/auth"
	authRepo "orgsite-backend/internal/domains/auth/repository"
	authService "orgsite-backend/internal/domains/auth/service"
	"orgsite-backend/internal/infrastructure/database"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	var req auth.CreateAdminRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return createAdmin(cmd.Context(), &req)
		},
	}
	create.Flags().StringVar(&req.Email, "email", "", "admin email")
	create.Flags().StringVar(&req.Password, "password", "", "admin password (8-72 characters)")
	create.Flags().StringVar(&req.Name, "name", "", "display name")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func createAdmin(ctx context.Context, req *auth.CreateAdminRequest) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	// Account creation needs neither sessions nor the login limiter.
	svc := authService.NewAuthService(authRepo.NewPostgresRepository(db.Pool), nil, nil)

	user, err := svc.CreateAdmin(ctx, req)
	if err != nil {
		return err
	}

	log.Info().Str("id", user.ID.String()).Str("email", user.Email).Msg("admin created")
	return nil
}
