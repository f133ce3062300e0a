package repository

import "strings"

// listClause resolves the shared sort/pagination rules for list queries:
// sort columns are allow-listed, order defaults to DESC, page size is capped
// at 100.
func listClause(allowedSorts map[string]string, defaultColumn, sortBy, sortOrder string, page, pageSize int) (column, order string, limit, offset int) {
	column, ok := allowedSorts[sortBy]
	if !ok {
		column = defaultColumn
	}
	order = strings.ToUpper(sortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return column, order, pageSize, (page - 1) * pageSize
}
