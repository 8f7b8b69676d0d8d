package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:     "member <command>",
	Aliases: []string{"mb"},
	Short:   "Inspect dao members",
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "list members and their token balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := provideClient().Members(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MEMBER\tTOKENS")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%d\n", m.ID, m.Balance)
		}

		return w.Flush()
	},
}

var memberShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "show one member and its token balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := provideClient().Member(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		cmd.Printf("%s holds %d tokens\n", m.ID, m.Balance)
		return nil
	},
}

var treasuryCmd = &cobra.Command{
	Use:   "treasury",
	Short: "show the current treasury balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		balance, err := provideClient().Treasury(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Printf("Current Treasury Balance: $%s\n", balance)
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "print the treasury and every proposal as markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := provideClient().Report(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Print(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(memberCmd)
	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberShowCmd)

	rootCmd.AddCommand(treasuryCmd)
	rootCmd.AddCommand(reportCmd)
}
