package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func levelsAction(w io.Writer, levelsDir, tunablesPath string) error {
	_, levels, err := loadSetup(tunablesPath, levelsDir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPLATFORMS\tSPIKES\tSTARS\tWIDTH\tBOTTOMLESS")
	for i := range levels {
		l := &levels[i]
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.0f\t%t\n",
			l.ID, l.Name, len(l.Platforms), len(l.Obstacles), len(l.Collectibles), l.RightEdge(), l.Bottomless)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d levels ok\n", len(levels))
	return nil
}
