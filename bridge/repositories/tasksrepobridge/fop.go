package tasksrepobridge

import (
	"fmt"
	"net/http"

	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
)

// QueryParams carries the raw list query values.
type QueryParams struct {
	Page       string
	Size       string
	Status     string
	Priority   string
	AssignedTo string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Page:       q.Get("page"),
		Size:       q.Get("size"),
		Status:     q.Get("status"),
		Priority:   q.Get("priority"),
		AssignedTo: q.Get("assigned_to"),
	}
}

// parseFilter validates the filter params. Enum values must parse; all
// filters are exact-match and combine with AND in the store.
func parseFilter(qp QueryParams) (tasksrepo.QueryFilter, error) {
	filter := tasksrepo.QueryFilter{}

	if qp.Status != "" {
		status, err := tasksrepo.ParseStatus(qp.Status)
		if err != nil {
			return filter, fmt.Errorf("invalid status filter: %w", err)
		}
		filter.Status = &status
	}

	if qp.Priority != "" {
		priority, err := tasksrepo.ParsePriority(qp.Priority)
		if err != nil {
			return filter, fmt.Errorf("invalid priority filter: %w", err)
		}
		filter.Priority = &priority
	}

	if qp.AssignedTo != "" {
		filter.AssignedTo = &qp.AssignedTo
	}

	return filter, nil
}
