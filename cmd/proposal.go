package cmd

import (
	"fmt"
	"text/tabwriter"

	"dao/core"
	"dao/handler/views"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// proposalCmd represents the proposal command
var proposalCmd = &cobra.Command{
	Use:     "proposal <command>",
	Aliases: []string{"pp"},
	Short:   "Manage proposals on a running dao server",
}

var proposalListCmd = &cobra.Command{
	Use:   "list",
	Short: "list proposals, statuses are recomputed first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := provideClient()

		limit, _ := cmd.Flags().GetInt("limit")
		var cursor int64

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tYES\tNO\tCREATED")

		for {
			page, err := client.ListProposals(ctx, cursor, limit)
			if err != nil {
				return err
			}

			for _, p := range page.Proposals {
				printProposalRow(w, p)
			}

			if !page.Pagination.HasNext {
				break
			}

			cursor = cast.ToInt64(page.Pagination.NextCursor)
		}

		return w.Flush()
	},
}

var proposalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "show one proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cast.ToInt64E(args[0])
		if err != nil {
			return fmt.Errorf("proposal id %q: %w", args[0], core.ErrProposalNotFound)
		}

		p, err := provideClient().FindProposal(cmd.Context(), id)
		if err != nil {
			return err
		}

		cmd.Printf("#%d %s\n", p.ID, p.Title)
		cmd.Println("Description:", p.Description)
		cmd.Println("Status:", p.Status)
		cmd.Printf("Votes: Yes - %d, No - %d\n", p.Votes.Yes, p.Votes.No)
		cmd.Println("Created:", p.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var proposalSubmitCmd = &cobra.Command{
	Use:   "submit <title> <description>",
	Short: "submit a new proposal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, description := args[0], args[1]
		if title == "" || description == "" {
			return fmt.Errorf("title and description are required: %w", core.ErrInvalidArgument)
		}

		p, err := provideClient().SubmitProposal(cmd.Context(), title, description)
		if err != nil {
			return err
		}

		cmd.Printf("Proposal '%s' submitted successfully! id %d\n", p.Title, p.ID)
		return nil
	},
}

var proposalVoteCmd = &cobra.Command{
	Use:   "vote <id> <yes|no>",
	Short: "cast a vote on a proposal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cast.ToInt64E(args[0])
		if err != nil {
			return fmt.Errorf("proposal id %q: %w", args[0], core.ErrProposalNotFound)
		}

		choice, err := core.ParseVoteChoice(core.NormalizeVoteChoice(args[1]))
		if err != nil {
			return err
		}

		if err := provideClient().CastVote(cmd.Context(), id, choice.String()); err != nil {
			return err
		}

		cmd.Printf("Your vote on proposal %d has been cast as '%s'\n", id, choice)
		return nil
	},
}

var proposalRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "recompute the status of every proposal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return provideClient().RecomputeStatuses(cmd.Context())
	},
}

func printProposalRow(w *tabwriter.Writer, p views.Proposal) {
	fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
		p.ID,
		p.Title,
		p.Status,
		p.Votes.Yes,
		p.Votes.No,
		p.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}

func init() {
	rootCmd.AddCommand(proposalCmd)

	proposalCmd.AddCommand(proposalListCmd)
	proposalListCmd.Flags().Int("limit", 50, "page size")

	proposalCmd.AddCommand(proposalShowCmd)
	proposalCmd.AddCommand(proposalSubmitCmd)
	proposalCmd.AddCommand(proposalVoteCmd)
	proposalCmd.AddCommand(proposalRecomputeCmd)
}
