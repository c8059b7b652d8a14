package client

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RenderRecord formats one record for terminal output. Pure string
// construction, no I/O.
func RenderRecord(rec *ImageRecord) string {
	var b strings.Builder

	verdict := "likely real"
	if rec.Analysis.IsAI {
		verdict = "likely AI-generated"
	}

	fmt.Fprintf(&b, "%s  %s\n", rec.OriginalName, verdict)
	fmt.Fprintf(&b, "  confidence: %.1f%%\n", rec.Analysis.Confidence)
	fmt.Fprintf(&b, "  source:     %s\n", rec.Analysis.Source)
	fmt.Fprintf(&b, "  uploaded:   %s\n", rec.CreatedAt.Format(time.RFC3339))

	if len(rec.Analysis.Details) > 0 {
		keys := make([]string, 0, len(rec.Analysis.Details))
		for k := range rec.Analysis.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %v\n", k, rec.Analysis.Details[k])
		}
	}

	return b.String()
}

// RenderRecords formats a list of records, preserving the given order.
func RenderRecords(records []ImageRecord) string {
	if len(records) == 0 {
		return "No images uploaded yet.\n"
	}

	var b strings.Builder
	for i := range records {
		b.WriteString(RenderRecord(&records[i]))
	}

	return b.String()
}
