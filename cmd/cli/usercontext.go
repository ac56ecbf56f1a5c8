package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func contextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Manage the goals and notes fed to AI suggestions",
	}
	cmd.AddCommand(contextGetCmd())
	cmd.AddCommand(contextSetCmd())
	cmd.AddCommand(contextClearCmd())
	return cmd
}

func contextGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show your stored goals and notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc, err := a.client.GetContext(context.Background())
			if err != nil {
				return err
			}
			if uc.Goals == "" && uc.Notes == "" {
				fmt.Println("No context set")
				return nil
			}
			if uc.Goals != "" {
				fmt.Printf("Goals: %s\n", uc.Goals)
			}
			if uc.Notes != "" {
				fmt.Printf("Notes: %s\n", uc.Notes)
			}
			return nil
		},
	}
}

func contextSetCmd() *cobra.Command {
	var (
		goals string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update your goals and/or notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var goalsPtr, notesPtr *string
			if cmd.Flags().Changed("goals") {
				goalsPtr = &goals
			}
			if cmd.Flags().Changed("notes") {
				notesPtr = &notes
			}
			if goalsPtr == nil && notesPtr == nil {
				return fmt.Errorf("nothing to set; pass --goals or --notes")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc, err := a.client.UpdateContext(context.Background(), goalsPtr, notesPtr)
			if err != nil {
				return err
			}
			fmt.Println("Context updated")
			if uc.Goals != "" {
				fmt.Printf("Goals: %s\n", uc.Goals)
			}
			if uc.Notes != "" {
				fmt.Printf("Notes: %s\n", uc.Notes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&goals, "goals", "", "your goals")
	cmd.Flags().StringVar(&notes, "notes", "", "your notes")

	return cmd
}

func contextClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete your stored goals and notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.client.DeleteContext(context.Background()); err != nil {
				return err
			}
			fmt.Println("Context cleared")
			return nil
		},
	}
}
