package trends

import "strings"

// categoryPublications maps the categories that have a dedicated outlet to
// that outlet's name. Categories outside the map are named without a
// publication.
var categoryPublications = map[string]string{
	CategoryEntertainment: "Lokmat Filmy",
	CategoryWomenOriented: "Lokmat Sakhi",
	CategoryDevotional:    "Lokmat Bhakti",
}

const (
	promptBase = "You are a news trend analyst. Analyze the topics trending right now in real time across social media and news platforms and propose publish-ready story ideas a newsroom can act on today."

	promptClosing = "Keep the analysis concise and insightful."
)

// Compose turns a filter set into the prompt for one trend-analysis
// request. It is a pure function with a fixed clause order: base
// instruction, location, language, category, closing. Identical filters
// always produce identical prompts.
func Compose(filters FilterSet) string {
	clauses := []string{promptBase}

	if loc := locationString(filters); loc != "" {
		clauses = append(clauses, "Focus on trends relevant to "+loc+".")
	}
	if filters.Language != "" {
		clauses = append(clauses, "Write the entire output in "+filters.Language+".")
	}
	if filters.Category != "" && filters.Category != CategoryAll {
		if publication, ok := categoryPublications[filters.Category]; ok {
			clauses = append(clauses, "Tailor the story ideas to the "+filters.Category+" category for "+publication+".")
		} else {
			clauses = append(clauses, "Tailor the story ideas to the "+filters.Category+" category.")
		}
	}

	clauses = append(clauses, promptClosing)
	return strings.Join(clauses, " ")
}

// locationString joins the non-empty location fields in city, district,
// state, country order. Values are not trimmed or normalized.
func locationString(filters FilterSet) string {
	fields := []string{filters.City, filters.District, filters.State, filters.Country}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, ", ")
}
