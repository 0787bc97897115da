package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chaz8081/melk-led/internal/catalog"
)

func newEffectsCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "effects",
		Short: "Print the effect, scene and microphone mode catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printCatalog(os.Stdout, catalog.New(), kind)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list one kind: static, effect, scene or mic")
	return cmd
}

func printCatalog(out io.Writer, cat *catalog.Catalog, kind string) error {
	switch kind {
	case "", "static", "effect", "scene", "mic":
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if kind != "mic" {
		fmt.Fprintln(w, "KIND\tID\tKEY\tLABEL")
		for _, e := range cat.Entries() {
			if kind != "" && e.Kind.String() != kind {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", e.Kind, e.ID, e.Key, e.Label)
		}
	}
	if kind == "" || kind == "mic" {
		if kind == "" {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "MIC MODE\tVALUE\tKEY\tLABEL")
		for _, m := range cat.MicModes() {
			fmt.Fprintf(w, "mic\t0x%02X\t%s\t%s\n", m.Value, m.Key, m.Label)
		}
	}
	return w.Flush()
}
