package trends

import (
	"strings"

	"trenddesk/models"
)

// Citation is a single grounded source reference attached to a report.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// CitationsFromChunks extracts citations from the grounding chunks of a
// generation response. Only chunks carrying a web source are kept; the
// title falls back to the URI when the source has none. A missing or
// webless chunk list degrades to an empty slice, never an error.
func CitationsFromChunks(chunks []models.GroundingChunk) []Citation {
	citations := make([]Citation, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = chunk.Web.URI
		}
		citations = append(citations, Citation{URI: chunk.Web.URI, Title: title})
	}
	return citations
}

// FormatCitation renders a citation as a single searchable line:
// Title <uri>.
func FormatCitation(c Citation) string {
	title := strings.TrimSpace(c.Title)
	uri := strings.TrimSpace(c.URI)
	switch {
	case title == "":
		return "<" + uri + ">"
	case uri == "":
		return title
	default:
		return title + " <" + uri + ">"
	}
}

// FormatCitations renders a collection of citations, one line each.
func FormatCitations(citations []Citation) []string {
	if len(citations) == 0 {
		return nil
	}
	out := make([]string, 0, len(citations))
	for _, c := range citations {
		out = append(out, FormatCitation(c))
	}
	return out
}
