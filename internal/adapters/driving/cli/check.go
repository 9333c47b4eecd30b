package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

var (
	checkURL      string
	checkCode     string
	checkPassword string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the reset simulation and the profile fetch together",
	Long: `Run both operations in sequence, as the form front end does: first the
credential reset simulation, then the profile fetch.

Example:
  profiltool check --url https://www.fiktivnistranica.com/profil/test \
    --code 5PBCGi3nCMSGg10rFF2JfQ= --password NewStrongPass123`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkURL, "url", "u", "", "profile URL or identifier")
	checkCmd.Flags().StringVarP(&checkCode, "code", "c", "", "reset code")
	checkCmd.Flags().StringVarP(&checkPassword, "password", "p", "", "new credential")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if resetService == nil || profileService == nil {
		return errors.New("services not configured")
	}

	w := cmd.OutOrStdout()
	rule := strings.Repeat("-", 30)

	fmt.Fprintln(w, "--- START ---")
	fmt.Fprintln(w, "Credential reset simulation...")
	reset := resetService.Reset(domain.ResetRequest{
		SubmittedCode: checkCode,
		NewCredential: checkPassword,
	})
	fmt.Fprintf(w, "  [%s]: %s\n", reset.Label(), reset.Message)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Profile fetch (target: %s)...\n", checkURL)
	profile := profileService.Fetch(cmd.Context(), checkURL)
	first, second := profile.Pair()
	if profile.OK {
		fmt.Fprintln(w, "  [SUCCESS - parsed]:")
		fmt.Fprintf(w, "  Name found: %s\n", first)
		fmt.Fprintf(w, "  Location found: %s\n", second)
	} else {
		fmt.Fprintln(w, "  [FETCH/PARSE ERROR]:")
		fmt.Fprintf(w, "  Details: %s\n", second)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- DONE ---")

	if err := failed(reset); err != nil {
		return err
	}
	return failed(profile.Outcome)
}
