package schema

import (
	"encoding/json"
	"time"

	connector "qareport-ws/infrastructure/connector/db"

	"github.com/rs/zerolog/log"
)

// WriteArchive stores a json snapshot of an entity before it is removed.
// Archiving failures are logged, never fatal: the delete proceeds.
func WriteArchive(db *connector.Database, entity string, payload map[string]interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("entity", entity).Msg("archive marshal failed")
		return
	}
	if _, err := db.InsertQuery(Archives, map[string]interface{}{
		"entity":      entity,
		"payload":     string(raw),
		"archived_at": time.Now().Format("2006-01-02 15:04:05"),
	}); err != nil {
		log.Error().Err(err).Str("entity", entity).Msg("archive write failed")
	}
}
