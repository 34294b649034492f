package snapshot

import (
	"fmt"
	"io"
)

// Text renders chips the way the stock sensors tool does: one block
// per chip, features indented with their readings.
func Text(w io.Writer, chips []Chip) {
	for i, chip := range chips {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, chip.Name)
		if chip.Adapter != "" {
			fmt.Fprintf(w, "Adapter: %s\n", chip.Adapter)
		}
		for _, f := range chip.Features {
			if f.Label != "" {
				fmt.Fprintf(w, "%s (%s):\n", f.Name, f.Label)
			} else {
				fmt.Fprintf(w, "%s:\n", f.Name)
			}
			for _, sf := range f.Subfeatures {
				fmt.Fprintf(w, "  %-24s %s\n", sf.Name+":", subfeatureText(sf))
			}
		}
	}
}

func subfeatureText(sf Subfeature) string {
	switch {
	case sf.Error != "":
		return fmt.Sprintf("ERROR: %s", sf.Error)
	case sf.Value == nil:
		return fmt.Sprintf("(not readable, %s)", sf.Access)
	case sf.Display != "":
		return sf.Display
	default:
		return fmt.Sprintf("%.3f", *sf.Value)
	}
}
