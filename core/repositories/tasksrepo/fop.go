package tasksrepo

// QueryFilter holds the available fields a task query can be filtered on.
// All filters are exact-match and combine with AND.
type QueryFilter struct {
	Status     *Status
	Priority   *Priority
	AssignedTo *string
}

// Orderable fields. Listing is fixed to newest-first with the primary key
// as tiebreak.
const (
	OrderByPK        = "task_id"
	OrderByCreatedAt = "created_at"
)
