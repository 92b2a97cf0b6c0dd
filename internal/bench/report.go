package bench

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders results as a table.
func WriteTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Implementation", "Seconds", "Hashes/s", "Checksum"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range results {
		table.Append([]string{
			r.Implementation,
			fmt.Sprintf("%.9f", r.Seconds),
			fmt.Sprintf("%.2f", r.HashesPerSecond),
			fmt.Sprintf("%d", r.Checksum),
		})
	}
	table.Render()
}

// WriteJSON emits one JSON object per result, one per line, with the same
// field names the native baseline driver prints.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
