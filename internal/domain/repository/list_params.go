package repository

// ListParams carries the normalized pagination and search parameters
// shared by list queries. Offset/Limit are expected to be already
// clamped by the caller (util.NormalizePagination).
type ListParams struct {
	Offset int
	Limit  int
	Search string
}
