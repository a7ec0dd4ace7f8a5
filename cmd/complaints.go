package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pqrsdesk/omnidesk/internal/app"
	"github.com/pqrsdesk/omnidesk/internal/models"
	"github.com/pqrsdesk/omnidesk/internal/repo/pqrsapi"
	"github.com/pqrsdesk/omnidesk/pkg/util"
)

func newComplaintsCmd() *cobra.Command {
	var statusFlag string
	var search string

	cmd := &cobra.Command{
		Use:   "complaints",
		Short: "List the PQRS cases conversations attach to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(func(client *pqrsapi.Client) error {
				complaints, err := client.ListComplaints(cmd.Context(), pqrsapi.ComplaintFilter{
					Status: models.ComplaintStatus(statusFlag),
					Search: search,
				})
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(complaints)
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tASSIGNED TO")
				for _, c := range complaints {
					assignee := ""
					if c.AssignedTo != nil {
						assignee = c.AssignedTo.DisplayName()
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, util.Truncate(c.Title, 50), c.Status, assignee)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "filter by status (pending|in_progress|resolved)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search")
	return cmd
}
