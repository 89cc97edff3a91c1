package favorg

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"
)

// ExportColumns is the fixed column set of every bookmark export format.
// JSON and CSV round-trip through ImportService unchanged.
var ExportColumns = []string{"title", "url", "category", "subcategory", "status"}

// CSVHeader is the fixed header line of the CSV interchange format.
var CSVHeader = []string{"Title", "URL", "Category", "Subcategory", "Status"}

// RenderCSV writes the interchange CSV with a BOM for spreadsheet tools.
func RenderCSV(bookmarks utils.Results) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(&buf)
	w.Write(CSVHeader)
	for _, bookmark := range bookmarks {
		row := make([]string, len(ExportColumns))
		for i, col := range ExportColumns {
			row[i] = utils.GetString(bookmark, col)
		}
		w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}

// RenderJSON writes the flat list interchange format.
func RenderJSON(bookmarks utils.Results) ([]byte, error) {
	out := make([]map[string]string, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		entry := map[string]string{}
		for _, col := range ExportColumns {
			entry[col] = utils.GetString(bookmark, col)
		}
		out = append(out, entry)
	}
	return json.MarshalIndent(out, "", "  ")
}

type xmlBookmark struct {
	Title       string `xml:"title"`
	URL         string `xml:"url"`
	Category    string `xml:"category"`
	Subcategory string `xml:"subcategory"`
	Status      string `xml:"status"`
}

type xmlBookmarks struct {
	XMLName   xml.Name      `xml:"bookmarks"`
	Bookmarks []xmlBookmark `xml:"bookmark"`
}

func RenderXML(bookmarks utils.Results) ([]byte, error) {
	doc := xmlBookmarks{}
	for _, bookmark := range bookmarks {
		doc.Bookmarks = append(doc.Bookmarks, xmlBookmark{
			Title:       utils.GetString(bookmark, "title"),
			URL:         utils.GetString(bookmark, "url"),
			Category:    utils.GetString(bookmark, "category"),
			Subcategory: utils.GetString(bookmark, "subcategory"),
			Status:      utils.GetString(bookmark, "status"),
		})
	}
	raw, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), raw...), nil
}

// ParseCSV reads the interchange CSV. Rows with a missing title or url are
// reported, not fatal.
func ParseCSV(data []byte) (utils.Results, []string) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, []string{"CSV nicht lesbar: " + err.Error()}
	}
	if len(records) == 0 {
		return nil, []string{"CSV ist leer"}
	}
	header := records[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "Title") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "URL") {
		return nil, []string{"CSV-Kopfzeile muss mit Title,URL beginnen"}
	}
	rows := utils.Results{}
	errs := []string{}
	for i, record := range records[1:] {
		get := func(idx int) string {
			if idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}
		row := utils.Record{
			"title":       get(0),
			"url":         get(1),
			"category":    get(2),
			"subcategory": get(3),
		}
		if status := get(4); status != "" {
			row["status"] = status
		}
		if utils.GetString(row, "title") == "" || utils.GetString(row, "url") == "" {
			errs = append(errs, fmt.Sprintf("Zeile %d: Titel oder URL fehlt", i+2))
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

// ParseJSON accepts the flat interchange list or a Chrome/Firefox bookmark
// tree and flattens it, folders becoming categories.
func ParseJSON(data []byte) (utils.Results, []string) {
	var flat []map[string]interface{}
	if err := json.Unmarshal(data, &flat); err == nil {
		rows := utils.Results{}
		errs := []string{}
		for i, entry := range flat {
			row := utils.Record{}
			for _, col := range ExportColumns {
				row[col] = utils.ToString(entry[col])
			}
			if utils.GetString(row, "title") == "" || utils.GetString(row, "url") == "" {
				errs = append(errs, fmt.Sprintf("Eintrag %d: Titel oder URL fehlt", i+1))
				continue
			}
			rows = append(rows, row)
		}
		return rows, errs
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, []string{"JSON nicht lesbar: " + err.Error()}
	}
	rows := utils.Results{}
	if roots, ok := tree["roots"]; ok { // Chrome export
		for _, root := range utils.ToMap(roots) {
			walkBookmarkTree(utils.ToMap(root), "", &rows)
		}
	} else { // Firefox export
		walkBookmarkTree(tree, "", &rows)
	}
	if len(rows) == 0 {
		return nil, []string{"keine Lesezeichen im JSON gefunden"}
	}
	return rows, nil
}

func walkBookmarkTree(node map[string]interface{}, folder string, rows *utils.Results) {
	name := utils.ToString(node["name"])
	if name == "" {
		name = utils.ToString(node["title"])
	}
	url := utils.ToString(node["url"])
	if url == "" {
		url = utils.ToString(node["uri"])
	}
	if url != "" {
		*rows = append(*rows, utils.Record{
			"title":    name,
			"url":      url,
			"category": folder,
		})
		return
	}
	children := utils.ToList(node["children"])
	childFolder := folder
	if name != "" {
		childFolder = name
	}
	for _, child := range children {
		walkBookmarkTree(utils.ToMap(child), childFolder, rows)
	}
}

func ParseXML(data []byte) (utils.Results, []string) {
	doc := xmlBookmarks{}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, []string{"XML nicht lesbar: " + err.Error()}
	}
	rows := utils.Results{}
	errs := []string{}
	for i, entry := range doc.Bookmarks {
		if entry.Title == "" || entry.URL == "" {
			errs = append(errs, fmt.Sprintf("Eintrag %d: Titel oder URL fehlt", i+1))
			continue
		}
		row := utils.Record{
			"title":       entry.Title,
			"url":         entry.URL,
			"category":    entry.Category,
			"subcategory": entry.Subcategory,
		}
		if entry.Status != "" {
			row["status"] = entry.Status
		}
		rows = append(rows, row)
	}
	return rows, errs
}

var (
	htmlFolderRe = regexp.MustCompile(`(?i)<H3[^>]*>([^<]*)</H3>`)
	htmlLinkRe   = regexp.MustCompile(`(?i)<A[^>]*HREF="([^"]+)"[^>]*>([^<]*)</A>`)
)

// ParseHTML reads the NETSCAPE browser bookmark export line by line,
// tracking the current folder heading as category.
func ParseHTML(data []byte) (utils.Results, []string) {
	rows := utils.Results{}
	folder := ""
	for _, line := range strings.Split(string(data), "\n") {
		if m := htmlFolderRe.FindStringSubmatch(line); m != nil {
			folder = strings.TrimSpace(m[1])
			continue
		}
		if m := htmlLinkRe.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(m[2])
			if title == "" {
				title = m[1]
			}
			rows = append(rows, utils.Record{
				"title":    title,
				"url":      m[1],
				"category": folder,
			})
		}
	}
	if len(rows) == 0 {
		return nil, []string{"keine Lesezeichen im HTML gefunden"}
	}
	return rows, nil
}

// ImportReport is the aggregate outcome of a batch import. A bad row never
// aborts the batch.
type ImportReport struct {
	Imported int64    `json:"imported"`
	Errors   []string `json:"errors"`
}

type ImportService struct {
	db *connector.Database
}

func NewImportService(db *connector.Database) *ImportService {
	return &ImportService{db: db}
}

// Import parses by format and inserts the valid rows.
func (s *ImportService) Import(format string, data []byte, creatorID int64) (ImportReport, error) {
	var rows utils.Results
	var errs []string
	switch format {
	case "csv":
		rows, errs = ParseCSV(data)
	case "json":
		rows, errs = ParseJSON(data)
	case "xml":
		rows, errs = ParseXML(data)
	case "html":
		rows, errs = ParseHTML(data)
	default:
		return ImportReport{}, utils.ValidationError("unbekanntes Importformat: " + format)
	}
	report := ImportReport{Errors: errs}
	if report.Errors == nil {
		report.Errors = []string{}
	}
	bookmarkService := NewBookmarkService(s.db)
	for i, row := range rows {
		if _, err := bookmarkService.Create(row, creatorID); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Eintrag %d: %v", i+1, err))
			continue
		}
		report.Imported++
	}
	return report, nil
}
