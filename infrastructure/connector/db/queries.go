package connector

import (
	"database/sql"
	"strings"

	"github.com/rs/zerolog/log"
)

func (db *Database) SelectQuery(name string, restrictions map[string]interface{}, isOr bool, views ...string) ([]map[string]interface{}, error) {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	return db.QueryAssociativeArray(db.BuildSelectQuery(name, restrictions, isOr, views...))
}

// SelectOrderedQuery appends an ORDER BY clause; suffix is trusted caller input.
func (db *Database) SelectOrderedQuery(name string, restrictions map[string]interface{}, order string) ([]map[string]interface{}, error) {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	q := db.BuildSelectQuery(name, restrictions, false)
	if order != "" {
		q += " ORDER BY " + order
	}
	return db.QueryAssociativeArray(q)
}

func (db *Database) CountQuery(name string, restrictions map[string]interface{}, isOr bool) (int64, error) {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	res, err := db.QueryAssociativeArray(db.BuildSelectQuery(name, restrictions, isOr, "COUNT(*) as count"))
	if err != nil || len(res) == 0 {
		return 0, err
	}
	return toInt64(res[0]["count"]), nil
}

func (db *Database) InsertQuery(name string, record map[string]interface{}) (int64, error) {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	query := db.BuildInsertQuery(name, record)
	if db.LogQueries {
		log.Info().Str("query", query).Msg("insert")
	}
	if db.GetDriver() == PostgresDriver {
		id := int64(0)
		err := db.Conn.QueryRow(query).Scan(&id)
		return id, err
	}
	res, err := db.Conn.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *Database) UpdateQuery(name string, record map[string]interface{}, restrictions map[string]interface{}, isOr bool) error {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	return db.Query(db.BuildUpdateQuery(name, record, restrictions, isOr))
}

func (db *Database) DeleteQuery(name string, restrictions map[string]interface{}, isOr bool) error {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	return db.Query(db.BuildDeleteQuery(name, restrictions, isOr))
}

// Query executes a statement whose rows are not needed.
func (db *Database) Query(query string) error {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	if db.LogQueries {
		log.Info().Str("query", query).Msg("exec")
	}
	rows, err := db.Conn.Query(query)
	if err != nil {
		return err
	}
	return rows.Close()
}

/*
* QueryAssociativeArray executes a query that returns multiple rows and
* returns the result as an array of associative arrays.
 */
func (db *Database) QueryAssociativeArray(query string) ([]map[string]interface{}, error) {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	if db.LogQueries {
		log.Info().Str("query", query).Msg("select")
	}
	rows, err := db.Conn.Query(query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("query failed")
		return nil, err
	}
	defer rows.Close()
	cols, _ := rows.Columns()
	var results []map[string]interface{}
	for rows.Next() {
		res, err := rowResultToMap(rows, cols)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func rowResultToMap(rows *sql.Rows, cols []string) (map[string]interface{}, error) {
	values := make([]interface{}, len(cols))
	pointers := make([]interface{}, len(cols))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}
	res := map[string]interface{}{}
	for i, col := range cols {
		switch v := values[i].(type) {
		case []byte:
			res[col] = string(v)
		default:
			res[col] = v
		}
	}
	return res, nil
}

func toInt64(v interface{}) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case string:
		i := int64(0)
		for _, c := range strings.TrimSpace(val) {
			if c < '0' || c > '9' {
				return i
			}
			i = i*10 + int64(c-'0')
		}
		return i
	default:
		return 0
	}
}
