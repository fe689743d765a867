package cmd

import (
	"fmt"

	"collection-manager/core/counts"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createCmd = &cobra.Command{
	Use:   "create OUT",
	Short: "Create an empty collection sheet listing every printing",
	Long:  `Writes a new CSV or XLSX sheet with one row per catalog printing and no copies.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()

		svc, err := s.collectionService(cmd.Context(), nil)
		if err != nil {
			return err
		}
		if err := svc.Create(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", args[0])
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update FILE",
	Short: "Re-resolve a collection sheet against the current catalog",
	Long: `Reads a sheet, resolves every row against the current catalog (following retired
identifiers), backs the file up as <name>.<YYYYMMDD_HHMMSS>.<ext> and rewrites it
listing every printing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()
		applySheetFlags(cmd, &s.cfg.Collection)

		svc, err := s.collectionService(cmd.Context(), nil)
		if err != nil {
			return err
		}
		backup, err := svc.Update(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if backup != "" {
			fmt.Printf("Backup:  %s\n", backup)
		}
		fmt.Printf("Updated: %s\n", args[0])
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge OUT IN...",
	Short: "Sum several collection sheets into one",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()
		applySheetFlags(cmd, &s.cfg.Collection)

		svc, err := s.collectionService(cmd.Context(), nil)
		if err != nil {
			return err
		}
		m, err := svc.Merge(cmd.Context(), args[0], args[1:]...)
		if err != nil {
			return err
		}
		printSummary("Merged", args[0], m)
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff OUT LEFT RIGHT",
	Short: "Write the counts of LEFT minus RIGHT",
	Long: `Writes one row per printing whose counts differ between LEFT and RIGHT.
Positive counts are copies only LEFT has, negative ones copies only RIGHT has.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		defer s.log.Sync()
		applySheetFlags(cmd, &s.cfg.Collection)

		svc, err := s.collectionService(cmd.Context(), nil)
		if err != nil {
			return err
		}
		d, err := svc.Diff(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if d.Len() == 0 {
			s.log.Info("Collections are identical", zap.String("left", args[1]), zap.String("right", args[2]))
		}
		printSummary("Diff", args[0], d)
		return nil
	},
}

func printSummary(verb, out string, m counts.Map) {
	var nonfoil, foil int
	for _, id := range m.IDs() {
		c := m.Get(id)
		nonfoil += c.Nonfoil
		foil += c.Foil
	}
	fmt.Printf("%s into %s: %d printings, %d nonfoil, %d foil\n", verb, out, m.Len(), nonfoil, foil)
}

func init() {
	addSheetFlags(updateCmd)
	addSheetFlags(mergeCmd)
	addSheetFlags(diffCmd)

	RootCmd.AddCommand(createCmd, updateCmd, mergeCmd, diffCmd)
}
