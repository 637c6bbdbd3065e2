package cli

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realstat/realstat/internal/auth"
	"github.com/realstat/realstat/internal/config"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin credentials",
	}

	cmd.AddCommand(newAdminCreateCmd())

	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create an admin or rotate an existing admin's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (generated and printed if omitted)")

	return cmd
}

func runAdminCreate(username, password string) error {
	generated := false
	if password == "" {
		var err error
		password, err = generatePassword(16)
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		generated = true
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := auth.NewAdminStore(database).Upsert(username, password); err != nil {
		return err
	}

	if generated {
		fmt.Printf("Admin %q saved, password: %s\n", username, password)
	} else {
		fmt.Printf("Admin %q saved\n", username)
	}
	return nil
}

// generatePassword returns a URL-safe random password of length n.
func generatePassword(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b)[:n], nil
}
