package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"luma/internal/infrastructure/config"
	"luma/internal/infrastructure/database"
	"luma/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Download store schema tools",
		Long:  `Apply or inspect the embedded download store schema.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the store schema",
		Long:  `Open the embedded download store and bring its schema up to date.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store status",
		Long:  `Report whether the embedded download store can be opened.`,
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := database.NewStore(&cfg.Database)
	defer store.Close()

	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to open download store: %w", err)
	}

	fmt.Printf("download store ready at %s\n", cfg.Database.Path)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Database.Path); os.IsNotExist(err) {
		fmt.Printf("download store not created yet (path %s)\n", cfg.Database.Path)
		return nil
	}

	store := database.NewStore(&cfg.Database)
	defer store.Close()

	if err := store.Init(); err != nil {
		fmt.Printf("download store unavailable: %v\n", err)
		return nil
	}

	fmt.Printf("download store healthy at %s\n", cfg.Database.Path)
	return nil
}

func loadConfig() (*config.Config, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
