package cmd

import (
	"encoding/json"
	"os"

	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "omnidesk",
	Short:         "Agent console for the PQRS omnichannel inbox",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var outputJSON bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print raw JSON instead of tables")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newChannelsCmd())
	rootCmd.AddCommand(newConversationsCmd())
	rootCmd.AddCommand(newContactsCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newComplaintsCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
