package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaz8081/melk-led/internal/ble"
)

func newScanCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List nearby MELK strips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.setup()
			if err != nil {
				return err
			}
			if timeout <= 0 {
				timeout = cfg.Timing.ScanTimeout
			}

			fmt.Printf("Scanning for %s...\n", timeout)
			strips, err := ble.ScanForStrips(cmd.Context(), ble.NewTinyGoAdapter(), timeout)
			if err != nil {
				return err
			}
			if len(strips) == 0 {
				fmt.Println("No strips found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ADDRESS\tNAME\tRSSI")
			for _, d := range strips {
				fmt.Fprintf(w, "%s\t%s\t%d\n", d.Address, d.Name, d.RSSI)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Println("\nAdd an address under devices: in the config file to manage it.")
			return nil
		},
	}
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "scan duration (default: timing.scan_timeout)")
	return cmd
}
