// core/taxonomy/table.go
package taxonomy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table maps a sequence identifier to its final lineage string.
type Table map[string]string

// LoadTSV reads a tab-separated taxonomy table from path.
func LoadTSV(path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Load(fh, path)
}

// Load parses a taxonomy table from r; name is used in error messages.
//
// The first line is a header and is discarded unconditionally. Every
// following non-blank line must be id<TAB>lineage, extra columns ignored;
// fewer than two columns is a hard parse error. Lineages go through
// CleanLineage, and a lineage value seen more than once is relabelled with
// a _REPEAT_<n>; suffix so no two ids ever share a literally equal
// lineage. A duplicate id overwrites the earlier row (last one wins).
func Load(r io.Reader, name string) (Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	tab := make(Table)
	seen := make(map[string]int)
	ln := 0
	for sc.Scan() {
		ln++
		if ln == 1 {
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return nil, fmt.Errorf("%s:%d bad field count", name, ln)
		}
		lineage := CleanLineage(f[1])
		seen[lineage]++
		if n := seen[lineage]; n > 1 {
			lineage = fmt.Sprintf("%s_REPEAT_%d;", lineage, n)
		}
		tab[f[0]] = lineage
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tab, nil
}
