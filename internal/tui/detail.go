package tui

import (
	"strings"
	"time"

	"github.com/abhay963/Notes-Saver/models"
)

// displayLayout renders timestamps in the list and view screens.
const displayLayout = "02 Jan 2006, 15:04:05"

// createdAtLayouts are the stored timestamp forms understood by
// formatCreatedAt, newest first.
var createdAtLayouts = []string{
	time.RFC1123Z,
	time.RFC3339Nano,
	time.RFC3339,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// displayLocation is the zone timestamps are rendered in.
var displayLocation = time.Local

// formatCreatedAt renders a stored timestamp in local time. Values in none of
// the known layouts are returned verbatim.
func formatCreatedAt(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "-"
	}
	// browser Date strings end with a zone name in parentheses
	if i := strings.Index(raw, " ("); i > 0 {
		raw = raw[:i]
	}

	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(displayLocation).Format(displayLayout)
		}
	}
	return s
}

func renderNoteDetail(n models.Note) (title, body string) {
	var b strings.Builder

	b.WriteString("Created : " + formatCreatedAt(n.CreatedAt) + "\n")
	if n.UpdatedAt != "" {
		b.WriteString("Updated : " + formatCreatedAt(n.UpdatedAt) + "\n")
	}
	b.WriteString("\n")
	if n.Content != "" {
		b.WriteString(n.Content)
	} else {
		b.WriteString("(empty)")
	}

	return "PASTE: " + n.Title, b.String()
}
