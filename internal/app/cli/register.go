package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sayceee/LoanSync1/internal/app/models"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда добавляет пользователя в локальную коллекцию. Все поля формы
// обязательны, пароль должен быть не короче 6 символов и совпадать с
// подтверждением, email должен быть свободен.
//
// Пароль по умолчанию запрашивается интерактивно дважды (скрытый ввод).
// Для скриптов доступны флаги --password/--confirm-password и
// --password-stdin.
//
// Пример использования:
//
//	loansync register --first-name Ivan --last-name Petrov --email test@example.com --phone 0712345678
//
// В случае успешной регистрации пользователю выводится сообщение
// об успешном завершении операции.
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		firstName, lastName string
		email, phone        string
		password, confirm   string
		passwordFromStdin   bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя.

Пример:
  loansync register --first-name Ivan --last-name Petrov --email test@example.com --phone 0712345678
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()

			// пароль: флаг, stdin или интерактивный ввод с подтверждением
			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin, "Password: ")
				if err != nil {
					return err
				}
				password = pw
				if passwordFromStdin {
					confirm = pw
				} else {
					c, err := ReadPassword(cmd, false, "Confirm password: ")
					if err != nil {
						return err
					}
					confirm = c
				}
			} else if confirm == "" {
				confirm = password
			}

			_, err := app.Services.Accounts.Register(cmd.Context(), models.RegisterRequest{
				FirstName:       firstName,
				LastName:        lastName,
				Email:           email,
				Phone:           phone,
				Password:        password,
				ConfirmPassword: confirm,
			})
			app.logOp("register", "", err, started)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Registration successful! Run: loansync login")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to enter interactively)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")

	return cmd
}
