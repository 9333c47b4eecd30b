package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

// resultError marks a command whose operation failed after its result was
// printed. Execute returns it so the process exits non-zero.
type resultError struct {
	category domain.Category
}

func (e *resultError) Error() string {
	return "operation failed: " + e.category.String()
}

func failed(o domain.Outcome) error {
	if o.OK {
		return nil
	}
	return &resultError{category: o.Category}
}

// printResetOutcome writes the reset result line.
func printResetOutcome(cmd *cobra.Command, o domain.Outcome) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "[%s] %s\n", o.Label(), o.Message)
}

// printProfileOutcome writes the fetched fields or the failure details.
func printProfileOutcome(cmd *cobra.Command, o domain.ProfileOutcome) {
	w := cmd.OutOrStdout()
	first, second := o.Pair()
	if !o.OK {
		fmt.Fprintf(w, "%s: %s\n", first, second)
		return
	}
	fmt.Fprintf(w, "Name:     %s\n", first)
	fmt.Fprintf(w, "Location: %s\n", second)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
