package dashboard

import "github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is everything the renderer needs.
// Visible is always derived from Customers, never from a previous Visible.
type State struct {
	Status       Status
	Customers    []*entity.Customer
	Visible      []*entity.Customer
	Search       string
	ErrorMessage string
}

// Action is an input to Reduce
type Action interface {
	action()
}

// FetchSucceeded carries the result of the initial fetch
type FetchSucceeded struct {
	Customers []*entity.Customer
}

// FetchFailed reports that the initial fetch failed
type FetchFailed struct {
	Err error
}

// SearchChanged carries the full current search text
type SearchChanged struct {
	Query string
}

func (FetchSucceeded) action() {}
func (FetchFailed) action() {}
func (SearchChanged) action() {}

const msgLoadFailed = "Failed to load customers"

func NewState() State {
	return State{Status: StatusLoading}
}

// Reduce returns the next state. Fetch results only apply while loading,
// and search changes only apply once ready.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchSucceeded:
		if s.Status != StatusLoading {
			return s
		}
		s.Status = StatusReady
		s.Customers = a.Customers
		s.Visible = Filter(s.Customers, s.Search)
	case FetchFailed:
		if s.Status != StatusLoading {
			return s
		}
		s.Status = StatusError
		s.ErrorMessage = msgLoadFailed
	case SearchChanged:
		if s.Status != StatusReady {
			return s
		}
		s.Search = a.Query
		s.Visible = Filter(s.Customers, s.Search)
	}
	return s
}
