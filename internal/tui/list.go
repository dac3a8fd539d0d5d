package tui

import (
	"fmt"
	"strings"

	"github.com/abhay963/Notes-Saver/models"
)

// defaultPreviewWords is the collapsed preview length of a note body.
const defaultPreviewWords = 50

// filterByTitle keeps the notes whose title contains term, ignoring case.
// An empty term keeps everything. Order is preserved.
func filterByTitle(notes []models.Note, term string) []models.Note {
	needle := strings.ToLower(term)
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), needle) {
			out = append(out, n)
		}
	}
	return out
}

// previewWords splits the trimmed text on single spaces.
func previewWords(text string) []string {
	return strings.Split(strings.TrimSpace(text), " ")
}

// needsTruncation reports whether text has more than limit words.
func needsTruncation(text string, limit int) bool {
	return len(previewWords(text)) > limit
}

// truncateWords returns text unchanged when it has at most limit words,
// otherwise its first limit words followed by "...".
func truncateWords(text string, limit int) string {
	words := previewWords(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + "..."
}

// expandedSet records which notes show their full body in the list.
type expandedSet map[string]bool

func (s expandedSet) toggle(id string) {
	if s[id] {
		delete(s, id)
		return
	}
	s[id] = true
}

func (s expandedSet) has(id string) bool {
	return s[id]
}

func renderNoteList(notes []models.Note, idx int, expanded expandedSet, limit int, searchLine string) string {
	var b strings.Builder

	if searchLine != "" {
		b.WriteString(searchLine)
		b.WriteString("\n\n")
	}

	for i, n := range notes {
		cursor := "  "
		title := fitText(n.Title, 48)
		if i == idx {
			cursor = "> "
			title = cursorStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, title))

		body := n.Content
		long := needsTruncation(n.Content, limit)
		if long && !expanded.has(n.ID) {
			body = truncateWords(n.Content, limit)
		}
		b.WriteString(indent(body, "     "))
		b.WriteString("\n")

		meta := "Created: " + formatCreatedAt(n.CreatedAt)
		if long {
			if expanded.has(n.ID) {
				meta += "  [space: show less]"
			} else {
				meta += "  [space: show more]"
			}
		}
		b.WriteString("     " + helpStyle.Render(meta) + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
