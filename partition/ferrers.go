package partition

import (
	"io"
	"strings"
)

// WriteFerrers writes the Ferrers diagram of the partition to w, one row
// of "*" cells per part, smallest part first:
//
//	* *
//	* * *
//	* * * * *
//
// Returns the first write error encountered, if any.
//
// Complexity: O(n) cells for a partition of weight n.
func (p *Partition) WriteFerrers(w io.Writer) error {
	parts := p.Parts()

	var row strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		row.Reset()
		for c := uint64(0); c < parts[i]; c++ {
			if c > 0 {
				row.WriteByte(' ')
			}
			row.WriteByte('*')
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}

	return nil
}

// Ferrers returns the Ferrers diagram as a string. Convenience wrapper
// around WriteFerrers.
func (p *Partition) Ferrers() string {
	var sb strings.Builder
	_ = p.WriteFerrers(&sb) // strings.Builder writes cannot fail

	return sb.String()
}
