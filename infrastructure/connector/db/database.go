package connector

import (
	"database/sql"
	"fmt"
	"os"
	"slices"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

/*
Generic connector to DB. Connection settings come from the environment,
DEFAULTCONF in main fills the blanks.
*/
const PostgresDriver = "postgres"
const MySQLDriver = "mysql"

var drivers = []string{
	PostgresDriver,
	MySQLDriver,
}

type Database struct {
	Driver     string
	Url        string
	LogQueries bool
	Conn       *sql.DB
}

func Open(beforeDB *Database) *Database {
	if beforeDB != nil && beforeDB.Conn != nil {
		return beforeDB
	}
	db := &Database{Driver: os.Getenv("DBDRIVER"), LogQueries: os.Getenv("log") == "enable"}
	if !slices.Contains(drivers, db.Driver) {
		log.Error().Msg("Invalid DB driver!")
		return nil
	}
	switch db.Driver {
	case PostgresDriver:
		db.Url = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			os.Getenv("DBHOST"),
			os.Getenv("DBPORT"),
			os.Getenv("DBUSER"),
			os.Getenv("DBPWD"),
			os.Getenv("DBNAME"),
			os.Getenv("DBSSL"),
		)
	case MySQLDriver:
		db.Url = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s",
			os.Getenv("DBUSER"),
			os.Getenv("DBPWD"),
			os.Getenv("DBHOST"),
			os.Getenv("DBPORT"),
			os.Getenv("DBNAME"),
		)
	}
	var err error
	db.Conn, err = sql.Open(db.Driver, db.Url)
	if err != nil {
		log.Error().Msgf("Error opening database: %v", err)
		return nil
	}
	return db
}

func (db *Database) Close() {
	if db != nil && db.Conn != nil {
		db.Conn.Close()
		db.Conn = nil
	}
}

func (db *Database) GetDriver() string {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	return db.Driver
}

func (db *Database) GetConn() *sql.DB {
	if db == nil || db.Conn == nil {
		db = Open(db)
	}
	return db.Conn
}
