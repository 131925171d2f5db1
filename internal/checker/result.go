package checker

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/proars/domnix/internal/classify"
	"github.com/proars/domnix/internal/output"
)

// Result is the outcome of checking one input domain.
type Result struct {
	// Domain is the normalized name that was checked, or the raw input token
	// when normalization failed.
	Domain string `json:"domain"`
	// Status is the availability verdict.
	Status classify.Status `json:"status"`
	// Note carries diagnostic context: the server that answered or the
	// failure description.
	Note string `json:"note"`
}

// IsEmpty reports whether the result carries no verdict.
func (r *Result) IsEmpty() bool {
	return r.Status == ""
}

// WriteText renders the result as one tab-separated line.
func (r *Result) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Domain, r.Status, r.Note)
	return err
}

// MultiResult holds the results of a bulk check, in input order.
type MultiResult struct {
	Results []*Result
}

// IsEmpty reports whether no results were produced.
func (m *MultiResult) IsEmpty() bool {
	return len(m.Results) == 0
}

// MarshalJSON serializes the bulk result as a JSON array of records.
func (m *MultiResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Results)
}

// WriteText writes all results as tab-separated lines, one per domain.
func (m *MultiResult) WriteText(w io.Writer) error {
	for _, r := range m.Results {
		if err := r.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders all results as an ASCII table with columns
// Domain / Status / Note.
func (m *MultiResult) WriteTable(w io.Writer) error {
	var rows [][]string
	for _, r := range m.Results {
		rows = append(rows, []string{r.Domain, string(r.Status), r.Note})
	}
	table := output.NewWrappingTable(w, 20, 40)
	table.Header([]string{"Domain", "Status", "Note"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// WriteCSV writes all results as CSV with a domain,status,note header.
func (m *MultiResult) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"domain", "status", "note"}); err != nil {
		return err
	}
	for _, r := range m.Results {
		if err := cw.Write([]string{r.Domain, string(r.Status), r.Note}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
