// trackctl is the support-desk client for the tracking portal: one-shot
// lookups and an interactive watch mode against a running portal instance.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
	"github.com/jongleur-maersk/tracking-portal/internal/core/service"
	"github.com/jongleur-maersk/tracking-portal/internal/trackclient"
	"github.com/jongleur-maersk/tracking-portal/pkg/logger"
)

var apiBase string

func main() {
	root := &cobra.Command{
		Use:   "trackctl",
		Short: "Support-desk client for the tracking portal",
	}
	root.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:8080", "portal base URL")

	root.AddCommand(newLookupCmd(), newWatchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <tracking-number>",
		Short: "Fetch and print a shipment report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := trackclient.New(apiBase)
			report, err := client.Track(cmd.Context(), args[0])
			if err != nil {
				if msg := service.UserMessage(err); msg != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
					return nil
				}
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// newWatchCmd reads tracking numbers from stdin, one per line. Each submission
// supersedes any lookup still in flight, so the printed report is always the
// latest request's result.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactively look up tracking numbers (one per line)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.Init(logger.Options{Level: "warn", Pretty: true, Output: cmd.ErrOrStderr()})
			session := service.NewLookupSession(trackclient.New(apiBase), log)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				for {
					select {
					case <-ctx.Done():
						return
					case <-session.Updates():
						snap := session.Snapshot()
						if snap.Err != nil {
							fmt.Fprintln(cmd.ErrOrStderr(), service.UserMessage(snap.Err))
							continue
						}
						if snap.Report != nil {
							printReport(cmd.OutOrStdout(), snap.Report)
						}
					}
				}
			}()

			fmt.Fprintln(cmd.OutOrStdout(), "Enter tracking numbers, one per line (Ctrl-D to quit):")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				session.Lookup(ctx, scanner.Text())
			}
			return scanner.Err()
		},
	}
}

func printReport(out io.Writer, r *ports.TrackingReport) {
	s := r.Shipment
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Tracking Number:\t%s\n", s.TrackingNumber)
	fmt.Fprintf(w, "Status:\t%s\n", s.Status)
	if r.KnownStage {
		fmt.Fprintf(w, "Stage:\t%s (%d%%)\n", s.TrackingStage, r.Progress)
	} else {
		fmt.Fprintf(w, "Stage:\t- (%d%%)\n", r.Progress)
	}
	fmt.Fprintf(w, "Route:\t%s → %s\n", s.Origin, s.Destination)
	fmt.Fprintf(w, "Carrier:\t%s (%s)\n", s.Carrier, s.CarrierReference)
	fmt.Fprintf(w, "Product:\t%s x%d, %s\n", s.Product, s.Quantity, s.Weight)
	fmt.Fprintf(w, "Expected Delivery:\t%s\n", s.ExpectedDeliveryDate)
	fmt.Fprintf(w, "Shipper:\t%s\n", s.Shipper.Name)
	fmt.Fprintf(w, "Receiver:\t%s\n", s.Receiver.Name)
	if s.ImportTax != "" {
		fmt.Fprintf(w, "Import Tax:\t%s (%s)\n", s.ImportTax, paidLabel(s.ImportTaxPaid))
	}
	for _, ins := range s.Insurances {
		fmt.Fprintf(w, "Insurance:\t%s %s (%s)\n", ins.Name, ins.Amount, paidLabel(ins.Paid))
	}
	if s.Comment != "" {
		fmt.Fprintf(w, "Note:\t%s\n", s.Comment)
	}
	fmt.Fprintf(w, "Link:\t%s\n", r.TrackingURL)
	_ = w.Flush()
}

func paidLabel(paid bool) string {
	if paid {
		return "PAID"
	}
	return "NOT PAID"
}
