package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/readyvault/internal/config"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			profile, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			if err := parser.ValidateProfile(profile); err != nil {
				var verr *config.ValidationError
				if errors.As(err, &verr) {
					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "Profile %s has %d problem(s):\n", args[0], len(verr.Problems))
					for _, p := range verr.Problems {
						fmt.Fprintf(out, "  - %s\n", p)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is valid\n", args[0])
			return nil
		},
	}
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example profile (YAML, or JSON for .json files)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_profile.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			parser := config.NewInputParser()
			if err := parser.SaveProfile(parser.CreateExampleProfile(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example profile written to %s\n", path)
			return nil
		},
	}
}
