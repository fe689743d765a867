package cmd

import (
	"errors"
	"fmt"

	"collection-manager/core/index"
	"collection-manager/core/resolver"
	"collection-manager/feature/lookup"

	"github.com/spf13/cobra"
)

var findRow resolver.Row

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Resolve a legacy record to a printing",
	Long: `Resolves set, name, number, multiverse id and artist the way sheet rows are resolved,
and prints the matching printing, or every candidate when the record is ambiguous.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if findRow.Name == "" {
			return errors.New("--name is required")
		}

		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()

		idx, err := s.loadIndex(cmd.Context())
		if err != nil {
			return err
		}
		svc := lookup.NewService(index.Static(idx), s.cfg.ResolverTables(), s.log)

		view, err := svc.Find(cmd.Context(), findRow)
		var multi *resolver.MultipleMatchError
		if errors.As(err, &multi) {
			fmt.Printf("%d printings match %s:\n", len(multi.Candidates), findRow)
			for _, id := range multi.Candidates {
				if c, err := svc.Card(cmd.Context(), id); err == nil {
					fmt.Printf("  %s  %-5s %-6s %s (%s)\n", c.ID, c.Set, c.CollectorNumber, c.Name, c.Artist)
				}
			}
			return err
		}
		if err != nil {
			return err
		}

		fmt.Println("\n--- Printing ---")
		fmt.Printf("ID:         %s\n", view.ID)
		fmt.Printf("Name:       %s\n", view.Name)
		fmt.Printf("Set:        %s (%s)\n", view.Set, view.SetName)
		fmt.Printf("Number:     %s\n", view.CollectorNumber)
		fmt.Printf("Artist:     %s\n", view.Artist)
		if len(view.MultiverseIDs) > 0 {
			fmt.Printf("Multiverse: %v\n", view.MultiverseIDs)
		}
		fmt.Println("----------------")
		return nil
	},
}

func init() {
	findCmd.Flags().StringVar(&findRow.SetCode, "set", "", "Set code")
	findCmd.Flags().StringVar(&findRow.Name, "name", "", "Card name (required)")
	findCmd.Flags().StringVar(&findRow.Number, "number", "", "Collector number")
	findCmd.Flags().IntVar(&findRow.MultiverseID, "multiverseid", resolver.NoMultiverseID, "Multiverse id")
	findCmd.Flags().StringVar(&findRow.Artist, "artist", "", "Artist")

	RootCmd.AddCommand(findCmd)
}
