package postgre

import (
	"fmt"
	"strings"

	repo "voice-shopping-list/internal/shoppinglist/repository"
)

// buildListQuery builds the WHERE/ORDER BY clause + args for ListLists.
// All non-empty options are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListListsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.TargetDate != nil {
		conditions = append(conditions, fmt.Sprintf("target_date = $%d", idx))
		args = append(args, *opt.TargetDate)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(opt.Status))
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	// Date-scoped listings read naturally by name; the full catalog
	// surfaces the most recent dates first.
	orderBy := "ORDER BY target_date DESC, name ASC"
	if opt.TargetDate != nil {
		orderBy = "ORDER BY name ASC"
	}

	return fmt.Sprintf("WHERE %s %s", where, orderBy), args
}
