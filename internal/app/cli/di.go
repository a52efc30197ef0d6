package cli

import (
	"github.com/Sayceee/LoanSync1/internal/app/storage"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewStorage   = storage.New
	ReadPassword = func(cmd *cobra.Command, fromStdin bool, prompt string) (string, error) {
		return readPassword(cmd, fromStdin, prompt)
	}
)
