package connector

import (
	"fmt"
	"sort"
	"strings"
)

// Quote escapes and single-quotes a literal for inline SQL.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatValue renders a restriction or column value as a SQL literal.
// Strings are quoted, nil becomes NULL, everything else prints as-is.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return Quote(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// RawSQL marks a value that must be embedded verbatim (subqueries, IN lists).
type RawSQL string

// FormatSQLRestrictionWhereByMap renders a restriction map as a WHERE body.
// Keys are sorted so built queries are stable.
func FormatSQLRestrictionWhereByMap(restrictions map[string]interface{}, isOr bool) string {
	if len(restrictions) == 0 {
		return ""
	}
	keys := make([]string, 0, len(restrictions))
	for k := range restrictions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{}
	for _, k := range keys {
		v := restrictions[k]
		if raw, ok := v.(RawSQL); ok {
			parts = append(parts, k+" "+string(raw))
		} else if v == nil {
			parts = append(parts, k+" IS NULL")
		} else {
			parts = append(parts, k+"="+FormatValue(v))
		}
	}
	sep := " AND "
	if isOr {
		sep = " OR "
	}
	return strings.Join(parts, sep)
}

func (db *Database) BuildSelectQuery(name string, restrictions map[string]interface{}, isOr bool, views ...string) string {
	view := "*"
	if len(views) > 0 {
		view = strings.Join(views, ",")
	}
	q := "SELECT " + view + " FROM " + name
	if where := FormatSQLRestrictionWhereByMap(restrictions, isOr); where != "" {
		q += " WHERE " + where
	}
	return q
}

func (db *Database) BuildDeleteQuery(name string, restrictions map[string]interface{}, isOr bool) string {
	q := "DELETE FROM " + name
	if where := FormatSQLRestrictionWhereByMap(restrictions, isOr); where != "" {
		q += " WHERE " + where
	}
	return q
}

func (db *Database) BuildInsertQuery(name string, record map[string]interface{}) string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, FormatValue(record[k]))
	}
	q := "INSERT INTO " + name + " (" + strings.Join(keys, ",") + ") VALUES (" + strings.Join(values, ",") + ")"
	if db.GetDriver() == PostgresDriver {
		q += " RETURNING id"
	}
	return q
}

func (db *Database) BuildUpdateQuery(name string, record map[string]interface{}, restrictions map[string]interface{}, isOr bool) string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sets := make([]string, 0, len(keys))
	for _, k := range keys {
		sets = append(sets, k+"="+FormatValue(record[k]))
	}
	q := "UPDATE " + name + " SET " + strings.Join(sets, ",")
	if where := FormatSQLRestrictionWhereByMap(restrictions, isOr); where != "" {
		q += " WHERE " + where
	}
	return q
}
