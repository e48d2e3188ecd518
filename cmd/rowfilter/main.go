// Command rowfilter reads a CSV file and a YAML filter definition,
// applies the named (or sole) filter, and writes matching rows back
// out as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"os"
	"sort"

	"github.com/golang/glog"

	"github.com/lrnxzz/rowpredicate/config"
	"github.com/lrnxzz/rowpredicate/predicate"
	"github.com/lrnxzz/rowpredicate/rowsource"
)

var (
	rowsPath   = flag.String("rows", "", "path to the input CSV file")
	filterPath = flag.String("filter", "", "path to the YAML filter definition")
	filterName = flag.String("name", "", "named filter to apply; required unless the file defines exactly one")
)

func main() {
	flag.Parse()
	if *rowsPath == "" || *filterPath == "" {
		glog.Exit("both -rows and -filter are required")
	}

	filters, err := config.LoadFile(*filterPath)
	if err != nil {
		glog.Exitf("loading filter definitions: %v", err)
	}
	name := *filterName
	if name == "" {
		if len(filters) != 1 {
			glog.Exitf("-name is required: %s defines %d filters", *filterPath, len(filters))
		}
		for n := range filters {
			name = n
		}
	}
	f, ok := filters[name]
	if !ok {
		glog.Exitf("no filter named %q in %s", name, *filterPath)
	}
	glog.V(1).Infof("applying filter %q, estimated cost %d", name, f.EstimatedCost())

	rowsFile, err := os.Open(*rowsPath)
	if err != nil {
		glog.Exitf("opening %s: %v", *rowsPath, err)
	}
	defer rowsFile.Close()

	rows, err := rowsource.ReadCSV(rowsFile)
	if err != nil {
		glog.Exitf("reading %s: %v", *rowsPath, err)
	}
	glog.V(1).Infof("read %d rows from %s", len(rows), *rowsPath)

	matched := f.Select(rows)
	glog.V(1).Infof("%d rows matched", len(matched))

	if err := writeCSV(os.Stdout, matched); err != nil {
		glog.Exitf("writing output: %v", err)
	}
}

func writeCSV(w *os.File, rows []predicate.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make(map[string]struct{})
	for _, r := range rows {
		for k := range r {
			header[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(header))
	for k := range header {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, r := range rows {
		record := make([]string, len(columns))
		for i, c := range columns {
			record[i] = r[c]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}
