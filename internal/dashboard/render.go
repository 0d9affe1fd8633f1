package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
)

const (
	msgLoading     = "Loading customers..."
	notAvailable   = "N/A"
	renderPadding  = 2
	renderMinWidth = 4
)

// Render writes the current view of s to w
func Render(w io.Writer, s State) error {
	switch s.Status {
	case StatusLoading:
		_, err := fmt.Fprintln(w, msgLoading)
		return err
	case StatusError:
		_, err := fmt.Fprintln(w, s.ErrorMessage)
		return err
	}

	if _, err := fmt.Fprintf(w, "Search: %s\n\n", s.Search); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, renderMinWidth, 0, renderPadding, ' ', 0)
	fmt.Fprintln(tw, "Name\tEmail\tOrder Count")
	for _, c := range s.Visible {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", c.FirstName, c.LastName, c.Email, orderCount(c))
	}
	return tw.Flush()
}

func orderCount(c *entity.Customer) string {
	if c.OrderCount == nil {
		return notAvailable
	}
	return strconv.FormatInt(*c.OrderCount, 10)
}
