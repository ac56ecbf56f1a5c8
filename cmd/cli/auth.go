package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"task-manager-cli/internal/utils"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [email] [password]",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, password := args[0], args[1]
			if !utils.IsValidEmail(email) {
				return fmt.Errorf("invalid email address")
			}
			if !utils.IsStrongPassword(password) {
				return fmt.Errorf("password must be at least 8 characters with upper, lower and digit")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !a.auth.Register(context.Background(), email, password) {
				return fmt.Errorf("%s", a.auth.Err())
			}
			user, _ := a.auth.User()
			fmt.Printf("Registered and signed in as %s\n", user.Email)
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Sign in and store the access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !a.auth.Login(context.Background(), args[0], args[1]) {
				return fmt.Errorf("%s", a.auth.Err())
			}
			user, _ := a.auth.User()
			fmt.Printf("Signed in as %s\n", user.Email)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.auth.Logout(context.Background())
			fmt.Println("Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.auth.CheckAuth(context.Background())
			user, ok := a.auth.User()
			if !ok {
				return fmt.Errorf("not signed in")
			}
			fmt.Printf("%s (id %d)\n", user.Email, user.ID)
			if user.Goals != "" {
				fmt.Printf("Goals: %s\n", user.Goals)
			}
			if user.Notes != "" {
				fmt.Printf("Notes: %s\n", user.Notes)
			}
			return nil
		},
	}
}
