package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	seedApp "github.com/sevendesk/helpdesk/internal/application/seed"
	"github.com/sevendesk/helpdesk/internal/infrastructure/auth"
	"github.com/sevendesk/helpdesk/internal/infrastructure/database"
	"github.com/sevendesk/helpdesk/internal/infrastructure/repository"
	"github.com/sevendesk/helpdesk/internal/interfaces/cli/bootstrap"
	"github.com/sevendesk/helpdesk/internal/shared/db"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts and a sample ticket",
		Long:  `Create the admin, agent and client demo accounts and, on an empty database, one sample ticket. Running it again changes nothing.`,
		RunE:  run,
	}
	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.Get()
	seeder := seedApp.NewSeeder(
		repository.NewUserRepository(gdb, log),
		repository.NewTicketRepository(gdb, log),
		repository.NewCommentRepository(gdb, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		db.NewTransactionManager(gdb),
		log,
	)

	result, err := seeder.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Printf("Seed complete: %d user(s) created, sample ticket created: %t\n", result.UsersCreated, result.TicketCreated)
	fmt.Printf("Demo password: %s\n", seedApp.DemoPassword)
	return nil
}
