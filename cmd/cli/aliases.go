package main

import (
	"fmt"
	"strings"

	gormRepo "itinerary-service/internal/interface/repository"
	"itinerary-service/internal/usecase"

	"github.com/spf13/cobra"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases CODE...",
	Short: "Show the locations a code expands to",
	Long:  "Prints each code together with its parent, children and siblings, the set a search treats as interchangeable.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		graph, err := usecase.LoadAliasGraph(ctx, gormRepo.NewGormLocationRepository(s.db))
		if err != nil {
			return err
		}

		for _, code := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", strings.ToUpper(code), strings.Join(graph.Resolve(code).Sorted(), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
}
