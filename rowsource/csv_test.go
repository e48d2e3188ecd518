package rowsource_test

import (
	"strings"
	"testing"

	"github.com/lrnxzz/rowpredicate/rowsource"
)

func TestReadCSV(t *testing.T) {
	input := "name,age\nalice,30\nbob,25\n"
	rows, err := rowsource.ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["name"] != "alice" || rows[0]["age"] != "30" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["name"] != "bob" || rows[1]["age"] != "25" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestReadCSVEmpty(t *testing.T) {
	rows, err := rowsource.ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rows != nil {
		t.Errorf("expected nil rows for empty input, got %v", rows)
	}
}

func TestOpenAllAggregatesErrors(t *testing.T) {
	_, err := rowsource.OpenAll([]string{"/no/such/file.csv"})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
