package dashboard

import (
	"strings"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
)

// Filter keeps customers whose first name, last name or email contains query,
// ignoring case. An empty query keeps everyone. The input slice is not modified.
func Filter(customers []*entity.Customer, query string) []*entity.Customer {
	needle := strings.ToLower(query)
	out := make([]*entity.Customer, 0, len(customers))

	for _, c := range customers {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.FirstName), needle) ||
			strings.Contains(strings.ToLower(c.LastName), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			out = append(out, c)
		}
	}
	return out
}
