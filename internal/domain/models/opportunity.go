package models

type WorkType string

const (
	WorkTypeRemote WorkType = "Remote"
	WorkTypeHybrid WorkType = "Hybrid"
	WorkTypeOnSite WorkType = "On-site"
)

// QuerySpec is a single search-engine query produced by the query builder.
type QuerySpec struct {
	Query     string `json:"query"`
	Provider  string `json:"provider"`
	Rationale string `json:"rationale"`
}

// RawOpportunity is a search result as returned by the search provider.
// URL is the identity key during retrieval.
type RawOpportunity struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	URL        string `json:"url"`
	Source     string `json:"source"`
	Snippet    string `json:"snippet,omitempty"`
	PostedDate string `json:"posted_date,omitempty"`
}

// CleanOpportunity is a deduplicated posting with an inferred work type.
// (title, company) is the identity key during cleaning.
type CleanOpportunity struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	Description string   `json:"description"`
	WorkType    WorkType `json:"work_type,omitempty"`
	PostedDate  string   `json:"posted_date,omitempty"`
}

type ScoredOpportunity struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	URL      string   `json:"url"`
	Source   string   `json:"source"`
	WorkType WorkType `json:"work_type,omitempty"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}
