// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is a single FASTA record. ID is the first whitespace-delimited
// token of the header line; Seq is the body with input line-wrapping
// collapsed into one string.
type Record struct {
	ID  string
	Seq string
}

// ScanRecords parses FASTA from r and calls emit for each record, in input
// order. A record is emitted as soon as its last line has been read, so
// callers can stream arbitrarily large databases. Lines before the first
// '>' header are ignored.
func ScanRecords(r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		seq  = make([]byte, 0, 1<<20)
		open bool
	)
	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq)})
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			seq = seq[:0]
			open = true
			continue
		}
		if !open {
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
