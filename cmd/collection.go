package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// collectionCmd groups the commands working on stored collections.
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Store collections in the database and export them",
}

var collectionSaveCmd = &cobra.Command{
	Use:   "save NAME FILE",
	Short: "Aggregate FILE and store it as collection NAME",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()
		applySheetFlags(cmd, &s.cfg.Collection)

		store, err := s.openStore()
		if err != nil {
			return err
		}
		svc, err := s.collectionService(cmd.Context(), store)
		if err != nil {
			return err
		}
		m, err := svc.Save(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s: %d printings, %d copies\n", args[0], m.Len(), m.Total())
		return nil
	},
}

var collectionExportCmd = &cobra.Command{
	Use:   "export NAME OUT",
	Short: "Write stored collection NAME to a sheet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()
		applySheetFlags(cmd, &s.cfg.Collection)

		store, err := s.openStore()
		if err != nil {
			return err
		}
		svc, err := s.collectionService(cmd.Context(), store)
		if err != nil {
			return err
		}
		m, err := svc.Export(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printSummary("Exported", args[1], m)
		return nil
	},
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()

		store, err := s.openStore()
		if err != nil {
			return err
		}
		names, err := store.Names(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	addSheetFlags(collectionSaveCmd)
	addSheetFlags(collectionExportCmd)

	collectionCmd.AddCommand(collectionSaveCmd, collectionExportCmd, collectionListCmd)
	RootCmd.AddCommand(collectionCmd)
}
