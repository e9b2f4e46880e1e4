package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/tradeverifyd/arrakis/internal/config"
	"github.com/tradeverifyd/arrakis/internal/script"
	"github.com/tradeverifyd/arrakis/pkg/arrakeener"
	"gopkg.in/yaml.v3"
)

func validateFormat(format string) error {
	return config.ValidateOutputFormat(format)
}

// writeReport renders a script report in the requested format
func writeReport(w io.Writer, format string, report *script.Report) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil

	case config.FormatCBOR:
		data, err := arrakeener.EncMode().Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = w.Write(data)
		return err

	default:
		return writeText(w, report)
	}
}

func writeText(w io.Writer, report *script.Report) error {
	fmt.Fprintf(w, "Scenario: %s\n\n", report.Name)

	for _, r := range report.Results {
		amount := "-"
		if r.Amount != nil {
			amount = fmt.Sprintf("%d", *r.Amount)
		}

		fmt.Fprintf(w, "  [%d] %-8s %-6s amount=%-6s delta=%-8d energy=%-5d solaris=%-8d spice=%d\n",
			r.Index, r.Actor, r.Action, amount, r.Delta, r.State.Energy, r.State.Solaris, r.State.Spice)
		if r.Error != "" {
			fmt.Fprintf(w, "      ✓ expected error: %s\n", r.Error)
		}
	}

	if len(report.Final) > 0 {
		fmt.Fprintf(w, "\nFinal state:\n")
		for _, handle := range sortedHandles(report) {
			s := report.Final[handle]
			fmt.Fprintf(w, "  %s: %s %s (%s, %s) energy=%d solaris=%d spice=%d\n",
				handle, s.FirstName, s.LastName, s.Affiliation, s.Occupation, s.Energy, s.Solaris, s.Spice)
		}
	}

	return nil
}

func sortedHandles(report *script.Report) []string {
	handles := make([]string, 0, len(report.Final))
	for handle := range report.Final {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}
