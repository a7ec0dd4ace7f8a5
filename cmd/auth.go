package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pqrsdesk/omnidesk/internal/app"
	"github.com/pqrsdesk/omnidesk/internal/usecase"
)

func newLoginCmd() *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the PQRS API and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = promptLine("Username: ")
			}
			if password == "" {
				password = promptLine("Password: ")
			}
			return app.Run(func(auth *usecase.AuthUsecase) error {
				user, err := auth.Login(cmd.Context(), username, password)
				if err != nil {
					return err
				}
				fmt.Printf("Logged in as %s\n", user.DisplayName())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(func(auth *usecase.AuthUsecase) error {
				if err := auth.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Logged out")
				return nil
			})
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(func(auth *usecase.AuthUsecase) error {
				if !auth.Authenticated() {
					return fmt.Errorf("not logged in, run `omnidesk login` first")
				}
				user, err := auth.Profile(cmd.Context())
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(user)
				}
				fmt.Printf("%s <%s>\n", user.DisplayName(), user.Email)
				if len(user.Groups) > 0 {
					fmt.Printf("roles: %s\n", strings.Join(user.Groups, ", "))
				}
				return nil
			})
		},
	}
}

func promptLine(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
