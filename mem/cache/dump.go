package cache

import (
	"fmt"
	"io"
)

// Dump writes the content of every block, set by set.
func (c *Comp) Dump(w io.Writer) {
	fmt.Fprintf(w, "\ncache:\n")

	for setID := 0; setID < c.tags.NumSets(); setID++ {
		fmt.Fprintf(w, "\tset %d:\n", setID)

		set := c.tags.GetSet(setID)
		for wayID, block := range set.Blocks {
			fmt.Fprintf(w, "\t\t[ %d ]: {", wayID)

			for _, word := range block.Data {
				fmt.Fprintf(w, " %d", word)
			}

			fmt.Fprintf(w, " }\n")
		}
	}

	fmt.Fprintf(w, "end cache\n")
}
