package csvutil

import (
	"strings"
	"testing"
)

func TestPreScanMembersCSVValidRows(t *testing.T) {
	csv := `Name,Phone,Club Category
John Doe,555-0001,Gold
Jane Smith,555-0002,
Bob Wilson,555-0003,Silver`

	rows, rowErrs, err := PreScanMembersCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("PreScanMembersCSV() error = %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Name != "John Doe" || rows[0].Phone != "555-0001" || rows[0].ClubCategory != "Gold" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].ClubCategory != "" {
		t.Errorf("row 1 category = %q, want empty", rows[1].ClubCategory)
	}
}

func TestPreScanMembersCSVNoHeader(t *testing.T) {
	csv := `John Doe,555-0001
Jane Smith,555-0002`

	rows, rowErrs, err := PreScanMembersCSV(strings.NewReader(csv))
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("PreScanMembersCSV() = errs %v, err %v", rowErrs, err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
}

func TestPreScanMembersCSVBadRows(t *testing.T) {
	csv := `Name,Phone
,555-0001
John Doe,`

	rows, rowErrs, err := PreScanMembersCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("PreScanMembersCSV() error = %v", err)
	}
	if rows != nil {
		t.Errorf("expected no rows when any row is invalid, got %d", len(rows))
	}
	if len(rowErrs) != 2 {
		t.Fatalf("got %d row errors, want 2", len(rowErrs))
	}
	if rowErrs[0].Line != 2 || rowErrs[0].Reason != "missing name" {
		t.Errorf("first error = %+v", rowErrs[0])
	}
	if rowErrs[1].Line != 3 || rowErrs[1].Reason != "missing phone" {
		t.Errorf("second error = %+v", rowErrs[1])
	}
}

func TestPreScanMembersCSVBlankAndEmpty(t *testing.T) {
	rows, rowErrs, err := PreScanMembersCSV(strings.NewReader(""))
	if err != nil || len(rowErrs) != 0 || len(rows) != 0 {
		t.Errorf("empty input: rows=%d errs=%v err=%v", len(rows), rowErrs, err)
	}

	csv := "Name,Phone\nJohn Doe,555-0001\n,,\n"
	rows, rowErrs, err = PreScanMembersCSV(strings.NewReader(csv))
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("blank rows: errs=%v err=%v", rowErrs, err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1 (blank row skipped)", len(rows))
	}
}
