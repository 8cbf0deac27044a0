package archive

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/blevesearch/bleve"

	"trenddesk/internal/telemetry"
	"trenddesk/internal/trends"
)

// Report is one archived trend query run.
type Report struct {
	ID        string            `json:"id"`
	Filters   trends.FilterSet  `json:"filters"`
	Prompt    string            `json:"prompt"`
	Text      string            `json:"text"`
	Citations []trends.Citation `json:"citations"`
	CreatedAt time.Time         `json:"created_at"`
}

// indexDoc is the searchable projection of a report. Citation lines are
// folded in so searches match source titles, not just body text.
type indexDoc struct {
	Text      string `json:"text"`
	Prompt    string `json:"prompt"`
	Citations string `json:"citations"`
}

// Hit is one search result, best match first.
type Hit struct {
	ID        string    `json:"id"`
	Snippet   string    `json:"snippet"`
	Score     float64   `json:"score"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

// Archive keeps settled reports in a mem-only BM25 index alongside their
// full records. Contents are lost on restart; durable storage is out of
// scope for this tool.
type Archive struct {
	mu     sync.RWMutex
	index  bleve.Index
	meta   map[string]Report
	order  []string
	logger *log.Logger
	now    func() time.Time
}

// NewArchive builds an empty in-memory archive.
func NewArchive(logger *log.Logger) (*Archive, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to build archive index: %w", err)
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[ARCHIVE] ", log.LstdFlags)
	}
	return &Archive{
		index:  index,
		meta:   make(map[string]Report),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Put indexes and records the report. Re-putting an ID replaces it.
func (a *Archive) Put(report Report) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	doc := indexDoc{
		Text:      report.Text,
		Prompt:    report.Prompt,
		Citations: strings.Join(trends.FormatCitations(report.Citations), "\n"),
	}
	if err := a.index.Index(report.ID, doc); err != nil {
		return fmt.Errorf("failed to index report: %w", err)
	}
	if _, ok := a.meta[report.ID]; !ok {
		a.order = append(a.order, report.ID)
	}
	a.meta[report.ID] = report
	telemetry.ReportsArchived.Inc()
	return nil
}

// Get returns the report with the given run ID.
func (a *Archive) Get(id string) (Report, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	report, ok := a.meta[id]
	return report, ok
}

// List returns all archived reports, newest first.
func (a *Archive) List() []Report {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Report, 0, len(a.order))
	for i := len(a.order) - 1; i >= 0; i-- {
		out = append(out, a.meta[a.order[i]])
	}
	return out
}

// Search runs a BM25 query over the archived reports and returns up to k
// hits, best first.
func (a *Archive) Search(q string, k int) ([]Hit, error) {
	if k <= 0 {
		k = 10
	}
	query := bleve.NewQueryStringQuery(q)
	searchReq := bleve.NewSearchRequestOptions(query, k*3, 0, false)
	res, err := a.index.Search(searchReq)
	if err != nil {
		return nil, fmt.Errorf("failed to search archive: %w", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Hit, 0, k)
	for i, hit := range res.Hits {
		report, ok := a.meta[hit.ID]
		if !ok {
			continue
		}
		out = append(out, Hit{
			ID:        hit.ID,
			Snippet:   snippet(report.Text),
			Score:     hit.Score,
			Rank:      i + 1,
			CreatedAt: report.CreatedAt,
		})
		if len(out) >= k {
			break
		}
	}
	return out, nil
}

// Record implements the executor's recorder hook. Archival must never
// affect the run outcome, so indexing failures are logged and swallowed.
func (a *Archive) Record(runID string, filters trends.FilterSet, prompt string, result trends.QueryResult) {
	report := Report{
		ID:        runID,
		Filters:   filters,
		Prompt:    prompt,
		Text:      result.Text,
		Citations: result.Citations,
		CreatedAt: a.now(),
	}
	if err := a.Put(report); err != nil {
		a.logger.Printf("failed to archive run %s: %v", runID, err)
	}
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= 300 {
		return s
	}
	return string(runes[:300]) + "…"
}
