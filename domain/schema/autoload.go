package schema

import (
	"fmt"
	"os"
	"time"

	connector "qareport-ws/infrastructure/connector/db"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// Load creates the fixed tables and seeds the rows the service cannot run
// without: the superadmin account, the protected system company and the
// sentinel category. Idempotent, runs at every startup.
func Load(db *connector.Database) {
	LoadTemplates("conf/templates.yaml")
	names := TableNames()
	bar := progressbar.NewOptions64(
		int64(len(names)+3),
		progressbar.OptionSetDescription("Setup root DB"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(os.Stderr, "\n") }),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
	for _, name := range names {
		if err := db.Query(BuildCreateTableQuery(db.GetDriver(), name)); err != nil {
			log.Error().Err(err).Str("table", name).Msg("table creation failed")
		}
		bar.Add(1)
	}
	seedSuperAdmin(db)
	bar.Add(1)
	seedSystemCompany(db)
	bar.Add(1)
	EnsureSentinelCategory(db)
	bar.Add(1)
}

func seedSuperAdmin(db *connector.Database) {
	name := os.Getenv("SUPERADMIN_NAME")
	if res, err := db.SelectQuery(Users, map[string]interface{}{"name": name}, false); err != nil || len(res) > 0 {
		return
	}
	if _, err := db.InsertQuery(Users, map[string]interface{}{
		"name":      name,
		"email":     os.Getenv("SUPERADMIN_EMAIL"),
		"password":  os.Getenv("SUPERADMIN_PASSWORD"), // already argon2-encoded by main
		"role":      "admin",
		"is_active": true,
	}); err != nil {
		log.Error().Err(err).Msg("superadmin seed failed")
	}
}

func seedSystemCompany(db *connector.Database) {
	if res, err := db.SelectQuery(Companies, map[string]interface{}{"name": SystemCompany}, false); err != nil || len(res) > 0 {
		return
	}
	if _, err := db.InsertQuery(Companies, map[string]interface{}{
		"name":        SystemCompany,
		"description": "Systemfirma, nicht löschbar",
	}); err != nil {
		log.Error().Err(err).Msg("system company seed failed")
	}
}

// EnsureSentinelCategory creates "Nicht zugeordnet" on demand and returns
// its id.
func EnsureSentinelCategory(db *connector.Database) (int64, error) {
	res, err := db.SelectQuery(Categories, map[string]interface{}{"name": SentinelCategory}, false)
	if err != nil {
		return 0, err
	}
	if len(res) > 0 {
		return toID(res[0]["id"]), nil
	}
	return db.InsertQuery(Categories, map[string]interface{}{
		"name":       SentinelCategory,
		"created_at": time.Now().Format("2006-01-02 15:04:05"),
	})
}

func toID(v interface{}) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case string:
		var i int64
		fmt.Sscanf(val, "%d", &i)
		return i
	default:
		return 0
	}
}
