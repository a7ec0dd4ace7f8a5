package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pqrsdesk/omnidesk/internal/app"
	"github.com/pqrsdesk/omnidesk/internal/usecase"
)

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the configured communication channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				channels, err := inbox.Store().LoadChannels(cmd.Context())
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(channels)
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTYPE\tACTIVE")
				for _, ch := range channels {
					fmt.Fprintf(w, "%d\t%s\t%s\t%v\n", ch.ID, ch.Name, ch.ChannelType.Label(), ch.IsActive)
				}
				return w.Flush()
			})
		},
	}
}
