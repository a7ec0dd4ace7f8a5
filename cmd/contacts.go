package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pqrsdesk/omnidesk/internal/app"
	"github.com/pqrsdesk/omnidesk/internal/usecase"
)

func newContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect contacts and their interaction history",
	}
	cmd.AddCommand(newContactsSummaryCmd())
	cmd.AddCommand(newContactsInteractionsCmd())
	return cmd
}

func newContactsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <contact-id>",
		Short: "Show interaction aggregates for a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				summary, err := inbox.ContactSummary(cmd.Context(), id)
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(summary)
				}
				fmt.Printf("%s (%s)\n", summary.Name, summary.PrimaryIdentifier)
				fmt.Printf("conversations: %d  complaints: %d\n",
					summary.TotalConversations, summary.TotalComplaints)
				if len(summary.PreferredChannels) > 0 {
					fmt.Println("preferred channels:")
					for _, ch := range summary.PreferredChannels {
						fmt.Printf("  %s (%d)\n", ch.Channel, ch.UsageCount)
					}
				}
				if summary.LastInteraction != nil {
					fmt.Printf("last interaction: %s: %s\n",
						summary.LastInteraction.InteractionType.Label(),
						summary.LastInteraction.Description)
				}
				return nil
			})
		},
	}
}

func newContactsInteractionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactions <contact-id>",
		Short: "List the audit trail for a contact, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				interactions, err := inbox.Interactions(cmd.Context(), id)
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(interactions)
				}
				for i := range interactions {
					it := &interactions[i]
					fmt.Printf("[%s] %s: %s\n",
						it.CreatedAt.Local().Format("2006-01-02 15:04"),
						it.InteractionType.Label(), it.Description)
				}
				return nil
			})
		},
	}
}
