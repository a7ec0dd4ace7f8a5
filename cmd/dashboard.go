package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pqrsdesk/omnidesk/internal/app"
	"github.com/pqrsdesk/omnidesk/internal/usecase"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show inbox-wide conversation statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				stats, err := inbox.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(stats)
				}
				fmt.Printf("total: %d  active: %d  resolved: %d  last 24h: %d\n",
					stats.TotalConversations, stats.ActiveConversations,
					stats.ResolvedConversations, stats.RecentActivity)
				if len(stats.ConversationsByChannel) > 0 {
					fmt.Println("by channel:")
					for _, c := range stats.ConversationsByChannel {
						fmt.Printf("  %s (%s): %d\n", c.ChannelName, c.ChannelType, c.Count)
					}
				}
				if len(stats.ConversationsByPriority) > 0 {
					fmt.Println("by priority:")
					for _, p := range stats.ConversationsByPriority {
						fmt.Printf("  %s: %d\n", p.Priority.Label(), p.Count)
					}
				}
				return nil
			})
		},
	}
}
