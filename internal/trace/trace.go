// Package trace records a chain run as CSV, one row per tick.
package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"chosenoffset.com/serpent/internal/chain"
)

// Header returns the column names for a chain with n nodes.
func Header(n int) []string {
	cols := []string{"tick", "head_x", "head_y", "head_theta"}
	for i := 0; i < n; i++ {
		cols = append(cols,
			fmt.Sprintf("node%d_x", i),
			fmt.Sprintf("node%d_y", i),
			fmt.Sprintf("node%d_theta", i),
		)
	}
	return cols
}

// Row formats a snapshot in Header order.
func Row(s chain.Snapshot) []string {
	row := make([]string, 0, 4+3*len(s.Nodes))
	row = append(row,
		strconv.Itoa(s.Tick),
		formatFloat(s.Head.Point.X),
		formatFloat(s.Head.Point.Y),
		formatFloat(s.Head.Theta),
	)
	for _, n := range s.Nodes {
		p := n.Point()
		row = append(row, formatFloat(p.X), formatFloat(p.Y), formatFloat(n.Theta()))
	}
	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Record writes the header and then steps rows to w. Each row holds the
// state before the tick that follows it, so the chain ends steps ticks
// further on.
func Record(w io.Writer, c *chain.Chain, steps int) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(c.Head().Len())); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for k := 0; k < steps; k++ {
		if err := cw.Write(Row(c.Snapshot())); err != nil {
			return fmt.Errorf("failed to write tick %d: %w", c.Ticks(), err)
		}
		c.Travel()
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush trace: %w", err)
	}
	return nil
}

// RecordFile runs Record into the file at path, creating parent
// directories as needed.
func RecordFile(path string, c *chain.Chain, steps int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create trace directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}

	if err := Record(f, c, steps); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}
