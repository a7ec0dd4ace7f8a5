package cmd

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pqrsdesk/omnidesk/internal/app"
	"github.com/pqrsdesk/omnidesk/internal/models"
	"github.com/pqrsdesk/omnidesk/internal/usecase"
	"github.com/pqrsdesk/omnidesk/pkg/util"
)

func newConversationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conv", "c"},
		Short:   "Browse and act on omnichannel conversations",
	}

	cmd.AddCommand(newConversationsListCmd())
	cmd.AddCommand(newConversationsGetCmd())
	cmd.AddCommand(newConversationsMessagesCmd())
	cmd.AddCommand(newConversationsSendCmd())
	cmd.AddCommand(newConversationsStatusCmd())
	return cmd
}

func newConversationsListCmd() *cobra.Command {
	var statusFlag string
	var channelID int64
	var priorityFlag string
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List conversations matching the filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.ConversationFilter{
				Channel: channelID,
				Search:  search,
			}
			if statusFlag != "" && statusFlag != "all" {
				status, err := models.ParseConversationStatus(statusFlag)
				if err != nil {
					return err
				}
				filter.Status = status
			}
			if priorityFlag != "" {
				priority, err := models.ParsePriority(priorityFlag)
				if err != nil {
					return err
				}
				filter.Priority = priority
			}

			return app.Run(func(inbox *usecase.InboxUsecase) error {
				if err := inbox.Store().LoadList(cmd.Context(), filter); err != nil {
					return err
				}
				conversations := inbox.Store().Conversations()
				if outputJSON {
					return printJSON(conversations)
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCONTACT\tCHANNEL\tSTATUS\tPRIORITY\tUNREAD\tLAST MESSAGE")
				for _, conv := range conversations {
					preview := ""
					if conv.LastMessage != nil {
						preview = util.Truncate(conv.LastMessage.Content, 40)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
						conv.ID, conv.Contact.Name, conv.Channel.Name,
						conv.Status, conv.Priority, conv.UnreadCount, preview)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "filter by status (active|waiting|resolved|closed|all)")
	cmd.Flags().Int64Var(&channelID, "channel", 0, "filter by channel id (0 = all)")
	cmd.Flags().StringVar(&priorityFlag, "priority", "", "filter by priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search")
	return cmd
}

func newConversationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				if err := inbox.Select(cmd.Context(), id); err != nil {
					return err
				}
				conv := inbox.Store().Selected()
				if conv == nil {
					return fmt.Errorf("conversation %d not found", id)
				}
				if outputJSON {
					return printJSON(conv)
				}
				fmt.Printf("#%d %s via %s\n", conv.ID, conv.Contact.Name, conv.Channel.Name)
				if conv.Subject != "" {
					fmt.Printf("subject: %s\n", conv.Subject)
				}
				fmt.Printf("status: %s  priority: %s\n", conv.Status.Label(), conv.Priority.Label())
				if conv.Agent != nil {
					fmt.Printf("agent: %s\n", conv.Agent.DisplayName())
				}
				fmt.Printf("last activity: %s\n", conv.LastActivity.Local())
				return nil
			})
		},
	}
}

func newConversationsMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "messages <id>",
		Short: "Show the message thread of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				if err := inbox.Select(cmd.Context(), id); err != nil {
					return err
				}
				messages := inbox.Store().Messages()
				if outputJSON {
					return printJSON(messages)
				}
				for i := range messages {
					msg := &messages[i]
					fmt.Printf("[%s] %s (%s): %s\n",
						msg.CreatedAt.Local().Format("2006-01-02 15:04"),
						msg.SenderName, msg.SenderType, msg.Summary())
				}
				return nil
			})
		},
	}
}

func newConversationsSendCmd() *cobra.Command {
	var text string
	var filePath string

	cmd := &cobra.Command{
		Use:   "send <id>",
		Short: "Send a message, optionally with one attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var attachment *usecase.Attachment
			if filePath != "" {
				attachment, err = readAttachment(filePath)
				if err != nil {
					return err
				}
				fmt.Printf("Attaching %s (%s)\n", attachment.Name, util.FormatBytes(int64(len(attachment.Data))))
			}

			return app.Run(func(inbox *usecase.InboxUsecase) error {
				if err := inbox.Select(cmd.Context(), id); err != nil {
					return err
				}
				created, err := inbox.SendMessage(cmd.Context(), usecase.SendMessageParams{
					Content:    text,
					Attachment: attachment,
				})
				if err != nil {
					return err
				}
				if created == nil {
					fmt.Println("Nothing to send")
					return nil
				}
				fmt.Printf("Sent message %d (%s)\n", created.ID, created.MessageType)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "message text")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "attachment path")
	return cmd
}

func newConversationsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <active|waiting|resolved|closed>",
		Short: "Change a conversation's lifecycle status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParseConversationStatus(args[1])
			if err != nil {
				return err
			}
			return app.Run(func(inbox *usecase.InboxUsecase) error {
				if err := inbox.Refresh(cmd.Context()); err != nil {
					return err
				}
				updated, err := inbox.UpdateStatus(cmd.Context(), id, status)
				if err != nil {
					return err
				}
				fmt.Printf("Conversation %d is now %s\n", updated.ID, updated.Status.Label())
				return nil
			})
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func readAttachment(path string) (*usecase.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return &usecase.Attachment{
		Name: filepath.Base(path),
		MIME: mimeType,
		Data: data,
	}, nil
}
