package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agbru/dialsim/internal/dial"
)

// DisplayTrace writes one aligned row per step: the instruction, the dial
// position before and after it, the zeros it passed and whether it landed.
// A totals row closes the table.
func DisplayTrace(steps []dial.Step, out io.Writer) error {
	fmt.Fprintf(out, "\n--- Trace ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tMove\tFrom\tTo\tZeros\tLanded\t")
	for _, s := range steps {
		landed := ""
		if s.Landed() {
			landed = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\t\n",
			s.Index+1, s.Instruction, s.Before, s.After, s.Crossings, landed)
	}
	landings, crossings := dial.Totals(steps)
	fmt.Fprintf(tw, "\t\t\t\t%d\t%d\t\n", crossings, landings)
	return tw.Flush()
}
