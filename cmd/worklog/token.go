package main

import (
	"errors"
	"fmt"

	"github.com/joestump/worklog/internal/auth"
	"github.com/joestump/worklog/internal/config"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the bearer token for the configured account",
		Long: "Checks the given credentials against the configured account and, " +
			"if they match, prints the token clients send as \"Authorization: Bearer <token>\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !auth.ValidateLogin(cfg.Account, username, password) {
				return errors.New("invalid username or password")
			}
			fmt.Fprintln(cmd.OutOrStdout(), auth.NewPasswordToken(cfg.Account.Password))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
