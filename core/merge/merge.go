// core/merge/merge.go
package merge

import (
	"fmt"
	"io"

	"taxmerge-core/fasta"
	"taxmerge-core/taxonomy"
)

// Stats summarizes one rewrite pass.
type Stats struct {
	Records   int // records read from the sequence database
	Relabeled int // records whose header was replaced from the table
}

// Rewrite streams FASTA records from r to w. A record whose identifier is
// present in tab gets the table's lineage as its header; every other
// record keeps its original identifier. Each record is written as one
// header line and one sequence line, in input order, regardless of input
// wrapping. Records are written as soon as they are read, so w should be
// buffered.
func Rewrite(tab taxonomy.Table, r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	err := fasta.ScanRecords(r, func(rec fasta.Record) error {
		header := rec.ID
		if lineage, ok := tab[rec.ID]; ok {
			header = lineage
			st.Relabeled++
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", header, rec.Seq); err != nil {
			return err
		}
		st.Records++
		return nil
	})
	return st, err
}
