package repository

// orderClause builds a safe ORDER BY from a per-repository whitelist.
// Unknown fields fall back to newest-first.
func orderClause(whitelist map[string]string, opts ListOptions) string {
	column, ok := whitelist[opts.SortField]
	if !ok {
		return "created_at DESC"
	}
	if opts.SortOrder == "asc" {
		return column + " ASC"
	}
	return column + " DESC"
}
