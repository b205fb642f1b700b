package gsmarena

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	selectorSpecTables = "div[id^=specs-list] table"
	selectorSpecTitle  = "th"
	selectorSpecRows   = "tbody tr"
	selectorRowTitle   = "td.ttl"
	selectorRowValues  = "td.nfo"
)

// SingleDevice is the column list of a page that describes one device.
var SingleDevice = []int{0}

func normalizeSpecValue(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, comparePlaceholder) {
		return ""
	}
	return value
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

// ParseSpecs reads every specification table in document order. Row data is
// laid out by `columns`: data[i] is the value cell at index columns[i], or ""
// if the row has no such cell.
func ParseSpecs(doc *goquery.Selection, columns []int) []SpecSection {
	sections := []SpecSection{}

	doc.Find(selectorSpecTables).Each(func(_ int, table *goquery.Selection) {
		title := strings.TrimSpace(table.Find(selectorSpecTitle).Text())
		if title == "" {
			return
		}

		rows := []SpecRow{}
		table.Find(selectorSpecRows).Each(func(_ int, tr *goquery.Selection) {
			rowTitle := strings.TrimSpace(tr.Find(selectorRowTitle).First().Text())
			if rowTitle == "" {
				return
			}

			var cells []string
			tr.Find(selectorRowValues).Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, normalizeSpecValue(td.Text()))
			})

			data := make([]string, len(columns))
			for i, col := range columns {
				if col >= 0 && col < len(cells) {
					data[i] = cells[col]
				}
			}
			if allEmpty(data) {
				return
			}

			rows = append(rows, SpecRow{Title: rowTitle, Data: data})
		})

		if len(rows) == 0 {
			return
		}
		sections = append(sections, SpecSection{Title: title, Rows: rows})
	})

	return sections
}
