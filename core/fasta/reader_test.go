package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func scanAll(t *testing.T, data string) []Record {
	t.Helper()
	var recs []Record
	if err := ScanRecords(strings.NewReader(data), func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return recs
}

func TestScanRecordsWrappedSequence(t *testing.T) {
	recs := scanAll(t, ">s1 some description\nACGT\nacgt\n>s2\nTTTT\n")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "s1" || recs[0].Seq != "ACGTacgt" {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
	if recs[1].ID != "s2" || recs[1].Seq != "TTTT" {
		t.Errorf("unexpected second record: %+v", recs[1])
	}
}

func TestScanRecordsIDIsFirstToken(t *testing.T) {
	recs := scanAll(t, ">NR_1234.1 Vibrio sp.\tstrain X\nAC\n")
	if len(recs) != 1 || recs[0].ID != "NR_1234.1" {
		t.Fatalf("expected id up to first whitespace, got %+v", recs)
	}
}

func TestScanRecordsNoTrailingNewline(t *testing.T) {
	recs := scanAll(t, ">a\nACGT")
	if len(recs) != 1 || recs[0].Seq != "ACGT" {
		t.Fatalf("last record lost without trailing newline: %+v", recs)
	}
}

func TestScanRecordsEmptyBody(t *testing.T) {
	recs := scanAll(t, ">a\n>b\nGG\n")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "a" || recs[0].Seq != "" {
		t.Errorf("body-less record should pass through empty: %+v", recs[0])
	}
}

func TestScanRecordsEmitError(t *testing.T) {
	calls := 0
	err := ScanRecords(strings.NewReader(">a\nAC\n>b\nGG\n"), func(Record) error {
		calls++
		return os.ErrClosed
	})
	if err == nil || calls != 1 {
		t.Fatalf("emit error must stop the scan: err=%v calls=%d", err, calls)
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">seq1\nACGT\n>seq2\nNNnn\n")); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open gz: %v", err)
	}
	defer func() { _ = rc.Close() }()

	var ids []string
	if err := ScanRecords(rc, func(r Record) error {
		ids = append(ids, r.ID)
		return nil
	}); err != nil {
		t.Fatalf("scan gz: %v", err)
	}
	if len(ids) != 2 || ids[0] != "seq1" || ids[1] != "seq2" {
		t.Fatalf("gzip parse failed, ids=%v", ids)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.fa")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
