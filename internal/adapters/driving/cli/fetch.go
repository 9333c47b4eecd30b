package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

var (
	fetchByID bool
	fetchJSON bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url-or-id>",
	Short: "Fetch the public name and location from a profile page",
	Long: `Fetch a profile page and print the display name and location.

The argument is requested as given when it is an absolute http(s) URL.
Anything else is treated as a profile identifier and expanded to
<profile_base_url>/profil/<id>. Use --id to force identifier expansion.

Examples:
  profiltool fetch https://www.fiktivnistranica.com/profil/test
  profiltool fetch test
  profiltool fetch --json test`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchByID, "id", false, "treat the argument as a profile identifier")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "print the outcome as JSON")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	var outcome domain.ProfileOutcome
	if fetchByID {
		outcome = profileService.FetchByID(cmd.Context(), args[0])
	} else {
		outcome = profileService.Fetch(cmd.Context(), args[0])
	}

	if fetchJSON {
		if err := printJSON(cmd, outcome); err != nil {
			return err
		}
	} else {
		printProfileOutcome(cmd, outcome)
	}
	return failed(outcome.Outcome)
}
