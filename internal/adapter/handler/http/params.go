package http

import (
	"strconv"

	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

// parseID parses a path identifier. Anything that is not a base-10 integer is rejected
// with the given client message.
func parseID(raw, invalidMsg string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.InvalidArgument(invalidMsg, err)
	}
	return id, nil
}
