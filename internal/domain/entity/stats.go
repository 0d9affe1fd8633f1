package entity

// RequestStats is a snapshot of request counters.
// Total is keyed by "requests", "2xx", "4xx", "5xx"; Routes by "METHOD /route:class".
type RequestStats struct {
	Total  map[string]int64 `json:"total"`
	Routes map[string]int64 `json:"routes"`
}
