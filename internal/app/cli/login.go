package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя.
//
// Команда проверяет учётные данные против локальной коллекции,
// выпускает токен сессии и сохраняет снимок пользователя в хранилище
// (ключ "currentUser"). Пароль по умолчанию запрашивается интерактивно.
//
// Пример использования:
//
//	loansync login --email test@example.com
//
// В случае успешного выполнения сессия сохраняется локально, а
// пользователю выводится приветствие.
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email             string
		password          string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя (создать сессию)",
		Long: `Вход пользователя.

Пример:
  loansync login --email test@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()

			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin, "Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			sess, err := app.Services.Accounts.Authenticate(cmd.Context(), email, password)
			app.logOp("login", "", err, started)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Login successful! Welcome back, %s!\n", sess.User.FirstName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to enter interactively)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}

// NewLogoutCmd создаёт CLI-команду выхода.
//
// Сессия сбрасывается безусловно — даже если её и не было.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Выход (сбросить сессию)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			err := app.Services.Accounts.Logout(cmd.Context())
			app.logOp("logout", "", err, started)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

// NewMeCmd создаёт CLI-команду для просмотра текущей сессии.
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "me",
		Short:        "Показать текущую сессию",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s <%s>\n", sess.User.FirstName, sess.User.LastName, sess.User.Email)
			fmt.Fprintf(out, "phone: %s\n", sess.User.Phone)
			fmt.Fprintf(out, "loans: %d\n", len(sess.User.Loans))
			return nil
		},
	}
}
