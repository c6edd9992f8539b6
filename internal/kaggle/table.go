package kaggle

import "strings"

// ParseTable parses the whitespace-column-aligned table the CLI prints on
// stdout. The first non-empty line holds the column headers; each
// following line is one record, split on runs of whitespace and zipped
// positionally with the headers. A table with fewer than two lines yields
// an empty slice, not an error.
//
// Column values containing embedded whitespace will misalign under this
// parse; that is an accepted limitation of the CLI's output format.
func ParseTable(output string) []map[string]string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	records := make([]map[string]string, 0)
	if len(lines) < 2 {
		return records
	}

	headers := strings.Fields(lines[0])
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(fields) {
				record[header] = fields[i]
			}
		}
		records = append(records, record)
	}

	return records
}
