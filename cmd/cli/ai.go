package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "suggest [query]",
		Short: "Ask the AI for task suggestions based on your goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			if strings.TrimSpace(query) == "" {
				return fmt.Errorf("query cannot be empty")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := context.Background()
			if create {
				result, err := a.client.SuggestAndCreate(ctx, query)
				if err != nil {
					return err
				}
				for _, t := range result.Created {
					fmt.Printf("Created task %d: %s\n", t.ID, t.Title)
				}
				if result.Message != "" {
					fmt.Println(result.Message)
				}
				return nil
			}

			result, err := a.client.Suggest(ctx, query)
			if err != nil {
				return err
			}
			if len(result.Suggestions) == 0 {
				fmt.Println("No suggestions")
				if result.Message != "" {
					fmt.Println(result.Message)
				}
				return nil
			}
			for _, s := range result.Suggestions {
				fmt.Printf("- %s\n", s.Title)
				if s.Reason != "" {
					fmt.Printf("  %s\n", s.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "also create the suggested tasks")

	return cmd
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show example AI suggestion queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			examples, err := a.client.SuggestionExamples(context.Background())
			if err != nil {
				return err
			}
			for _, e := range examples {
				fmt.Printf("- %s\n", e)
			}
			return nil
		},
	}
}
