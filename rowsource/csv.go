// Package rowsource reads tabular rows into predicate.Row values.
// Row ingestion is explicitly out of scope for the optimizer core; it
// is one of the external collaborators the core is built to serve.
package rowsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/lrnxzz/rowpredicate/predicate"
)

// ReadCSV reads rows from r, treating the first line as the header
// row whose values become field names for every subsequent row.
func ReadCSV(r io.Reader) ([]predicate.Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rowsource: reading header: %w", err)
	}

	var rows []predicate.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rowsource: reading row %d: %w", len(rows)+1, err)
		}
		row := make(predicate.Row, len(header))
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// OpenAll reads every path as a CSV file, returning the concatenated
// rows. Per-file failures are aggregated with multierror rather than
// aborting on the first bad file, so a caller pointed at a directory
// of mostly-good files still gets everything that parsed.
func OpenAll(paths []string) ([]predicate.Row, error) {
	var all []predicate.Row
	var errs error
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		rows, err := ReadCSV(f)
		f.Close()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		all = append(all, rows...)
	}
	return all, errs
}
