package trends

// Category vocabulary. The set is closed; "all" is the sentinel for "no
// category tailoring".
const (
	CategoryAll           = "all"
	CategoryCrime         = "crime"
	CategorySports        = "sports"
	CategoryPolitics      = "politics"
	CategorySocial        = "social"
	CategoryEntertainment = "entertainment"
	CategoryWomenOriented = "women-oriented"
	CategoryDevotional    = "devotional"
)

// Defaults applied to unset filter fields.
const (
	DefaultLanguage = "english"
	DefaultCategory = CategoryAll
)

// FilterSet parameterizes a single trend-analysis request. All fields are
// free-form strings; empty means "unset". Location fields pass through
// verbatim, narrowest to widest.
type FilterSet struct {
	Country  string `json:"country"`
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city"`
	Language string `json:"language"`
	Category string `json:"category"`
}

// WithDefaults returns a copy with the language and category defaults
// filled into unset fields. Location fields are never defaulted.
func (f FilterSet) WithDefaults() FilterSet {
	if f.Language == "" {
		f.Language = DefaultLanguage
	}
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	return f
}
