// internal/app/system/csvutil/members.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// MemberCSVRow is the normalized row produced by PreScanMembersCSV.
type MemberCSVRow struct {
	Name         string
	Phone        string
	ClubCategory string // optional category name, may be empty
}

// RowError describes one rejected CSV row.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// PreScanMembersCSV reads all rows from r, skips a header if present,
// and validates each row. Columns: Name, Phone, and an optional Club
// Category name. Either all rows are valid and returned normalized, or
// the offending rows come back as rowErrs. It never writes to a DB;
// it's safe to call before any mutations.
func PreScanMembersCSV(r io.Reader) (rows []MemberCSVRow, rowErrs []RowError, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	line := 0

	// Pull first row to check header.
	first, ferr := reader.Read()
	if ferr == io.EOF {
		first = nil
	} else if ferr != nil {
		return nil, nil, ferr
	}

	type numbered struct {
		line int
		rec  []string
	}
	var raw []numbered

	if first != nil {
		line = 1
		if len(first) >= 2 &&
			strings.EqualFold(strings.TrimSpace(first[0]), "name") &&
			strings.EqualFold(strings.TrimSpace(first[1]), "phone") {
			// header detected, skip
		} else {
			raw = append(raw, numbered{line, first})
		}
	}
	for {
		rec, e := reader.Read()
		if e == io.EOF {
			break
		}
		line++
		if e != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "malformed CSV row"})
			continue
		}
		if len(rec) == 0 {
			continue
		}
		if len(raw) >= MaxRows {
			return nil, nil, fmt.Errorf("too many rows (limit %d)", MaxRows)
		}
		raw = append(raw, numbered{line, rec})
	}

	field := func(rec []string, i int) string {
		if len(rec) > i {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	for _, nr := range raw {
		row := MemberCSVRow{
			Name:         field(nr.rec, 0),
			Phone:        field(nr.rec, 1),
			ClubCategory: field(nr.rec, 2),
		}
		if row.Name == "" && row.Phone == "" {
			continue // blank line
		}
		if row.Name == "" {
			rowErrs = append(rowErrs, RowError{Line: nr.line, Reason: "missing name"})
			continue
		}
		if row.Phone == "" {
			rowErrs = append(rowErrs, RowError{Line: nr.line, Reason: "missing phone"})
			continue
		}
		rows = append(rows, row)
	}

	if len(rowErrs) > 0 {
		return nil, rowErrs, nil
	}
	return rows, nil, nil
}
