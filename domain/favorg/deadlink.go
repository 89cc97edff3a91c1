package favorg

import (
	"net"
	"net/http"
	"time"

	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"

	"github.com/rs/zerolog/log"
)

// Classify maps a probe outcome onto a bookmark status.
func Classify(statusCode int, err error) string {
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return StatusTimeout
		}
		return StatusDead
	}
	if statusCode >= 200 && statusCode < 400 {
		return StatusActive
	}
	return StatusDead
}

// DeadLinkService probes bookmark URLs with HEAD, falling back to GET for
// servers that reject HEAD. Locked and duplicate bookmarks are skipped.
type DeadLinkService struct {
	db     *connector.Database
	client *http.Client
}

func NewDeadLinkService(db *connector.Database) *DeadLinkService {
	return &DeadLinkService{
		db:     db,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ValidationReport aggregates one validation run.
type ValidationReport struct {
	Checked   int64 `json:"checked"`
	Active    int64 `json:"active"`
	Dead      int64 `json:"dead"`
	Timeout   int64 `json:"timeout"`
	Localhost int64 `json:"localhost"`
}

func (s *DeadLinkService) ValidateAll() (ValidationReport, error) {
	report := ValidationReport{}
	rows, err := s.db.SelectQuery(schema.Bookmarks, nil, false)
	if err != nil {
		return report, err
	}
	for _, row := range rows {
		bookmark := utils.Record(row)
		current := utils.GetString(bookmark, "status")
		if current == StatusLocked || current == StatusDuplicate {
			continue
		}
		status := s.probe(utils.GetString(bookmark, "url"))
		report.Checked++
		switch status {
		case StatusActive:
			report.Active++
		case StatusDead:
			report.Dead++
		case StatusTimeout:
			report.Timeout++
		case StatusLocalhost:
			report.Localhost++
		}
		if status == current {
			continue
		}
		if err := s.db.UpdateQuery(schema.Bookmarks,
			map[string]interface{}{"status": status},
			map[string]interface{}{"id": bookmark["id"]}, false); err != nil {
			log.Error().Err(err).Int64("id", utils.GetInt64(bookmark, "id")).Msg("status update failed")
		}
	}
	return report, nil
}

func (s *DeadLinkService) probe(bookmarkURL string) string {
	if IsLocalhostURL(bookmarkURL) {
		return StatusLocalhost
	}
	resp, err := s.client.Head(bookmarkURL)
	if err == nil {
		resp.Body.Close()
		if resp.StatusCode < 400 {
			return Classify(resp.StatusCode, nil)
		}
	}
	// some servers reject HEAD, retry with GET before giving up
	resp, err = s.client.Get(bookmarkURL)
	if err != nil {
		return Classify(0, err)
	}
	defer resp.Body.Close()
	return Classify(resp.StatusCode, nil)
}
