package albums

import (
	"bytes"
	"encoding/json"
)

// Page is a paginated album listing. Older server versions return a bare
// array instead of the count/results envelope; UnmarshalJSON accepts
// both, with Count falling back to the result length.
type Page struct {
	Count   int       `json:"count"`
	Results []Summary `json:"results"`
}

func (p *Page) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var results []Summary
		if err := json.Unmarshal(b, &results); err != nil {
			return err
		}
		p.Results = results
		p.Count = len(results)
		return nil
	}

	type envelope Page
	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	*p = Page(e)
	return nil
}

// TotalPages returns the number of pages needed for Count items.
func (p Page) TotalPages(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (p.Count + pageSize - 1) / pageSize
}
