package admin

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"luma/internal/infrastructure/auth"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
	}

	cmd.AddCommand(newHashPasswordCommand())

	return cmd
}

// hash-password produces the bcrypt hash carried in
// auth.admin_password_hash. The password is read from the terminal so it
// never lands in shell history.
func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Generate a bcrypt hash for the admin password",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if len(password) == 0 {
				return fmt.Errorf("password must not be empty")
			}

			hasher := auth.NewBcryptPasswordHasher(0)
			hash, err := hasher.Hash(string(password))
			if err != nil {
				return err
			}

			fmt.Println(hash)
			return nil
		},
	}
}
