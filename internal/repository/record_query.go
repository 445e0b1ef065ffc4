package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/docstream/docstream-api/internal/models"
)

// listOwned pages through a table whose rows carry created_by, newest first.
func listOwned(ctx context.Context, db sqlx.QueryerContext, dest interface{}, table, columns string, filter models.RecordFilter) (int, error) {
	baseQuery := fmt.Sprintf("FROM %s", table)
	var args []interface{}
	if filter.CreatedBy != "" {
		baseQuery += " WHERE created_by = $1"
		args = append(args, filter.CreatedBy)
	}

	page, size := models.NormalizePage(filter.Page, filter.PageSize)
	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", columns, baseQuery, size, (page-1)*size)
	if err := sqlx.SelectContext(ctx, db, dest, listQuery, args...); err != nil {
		return 0, fmt.Errorf("list %s: %w", table, err)
	}

	var total int
	if err := sqlx.GetContext(ctx, db, &total, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}
