// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVHeader is the column layout of a trade export, in order.
var CSVHeader = []string{"date", "time", "symbol", "direction", "outcome", "pnl"}

// ReadCSV parses a trade export. The first row must be the header; column
// order is fixed. A pnl cell that does not parse becomes NaN rather than an
// error, so a single bad row in a broker export never aborts an import —
// the engine drops NaN trades explicitly.
func ReadCSV(r io.Reader) ([]TradeRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, want := range CSVHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return nil, fmt.Errorf("csv column %d: got %q, want %q", i, header[i], want)
		}
	}

	var out []TradeRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		pnl, perr := strconv.ParseFloat(strings.TrimSpace(rec[5]), 64)
		if perr != nil {
			pnl = math.NaN()
		}
		out = append(out, TradeRow{
			Date:      strings.TrimSpace(rec[0]),
			Time:      strings.TrimSpace(rec[1]),
			Symbol:    strings.TrimSpace(rec[2]),
			Direction: strings.TrimSpace(rec[3]),
			Outcome:   strings.TrimSpace(rec[4]),
			Pnl:       pnl,
		})
	}
	return out, nil
}

// ReadCSVFile is ReadCSV over a file path.
func ReadCSVFile(path string) ([]TradeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes rows back out in the import layout. NaN pnl cells are
// written empty.
func WriteCSV(w io.Writer, rows []TradeRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		pnl := ""
		if !math.IsNaN(r.Pnl) {
			pnl = strconv.FormatFloat(r.Pnl, 'f', -1, 64)
		}
		if err := cw.Write([]string{r.Date, r.Time, r.Symbol, r.Direction, r.Outcome, pnl}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
