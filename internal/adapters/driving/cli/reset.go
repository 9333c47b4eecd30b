package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

var (
	resetCode     string
	resetPassword string
	resetJSON     bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Simulate a credential reset",
	Long: `Check a reset code and a new credential against the simulated reset rules.

The code must match the issued reset code exactly and the new credential
must be at least 8 characters long. Nothing is stored.

If --password is omitted the new credential is read from the terminal
without echo.

Examples:
  profiltool reset --code 5PBCGi3nCMSGg10rFF2JfQ=
  profiltool reset --code ABC --password hunter22 --json`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVarP(&resetCode, "code", "c", "", "reset code")
	resetCmd.Flags().StringVarP(&resetPassword, "password", "p", "", "new credential (prompted when omitted)")
	resetCmd.Flags().BoolVar(&resetJSON, "json", false, "print the outcome as JSON")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if resetService == nil {
		return errors.New("reset service not configured")
	}

	password := resetPassword
	if !cmd.Flags().Changed("password") {
		p, err := passwordReader("New password: ", cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		password = p
	}

	outcome := resetService.Reset(domain.ResetRequest{
		SubmittedCode: resetCode,
		NewCredential: password,
	})

	if resetJSON {
		if err := printJSON(cmd, outcome); err != nil {
			return err
		}
	} else {
		printResetOutcome(cmd, outcome)
	}
	return failed(outcome)
}
