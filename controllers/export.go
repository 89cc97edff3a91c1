package controllers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"qareport-ws/controllers/controller"
	"qareport-ws/domain/favorg"
	"qareport-ws/domain/policy"
	"qareport-ws/domain/qa"
	"qareport-ws/domain/schema"
	"qareport-ws/domain/utils"
	connector "qareport-ws/infrastructure/connector/db"

	"github.com/thedatashed/xlsxreader"
)

// Export and import endpoints for bookmarks, test cases and project reports
type ExportController struct{ controller.AbstractController }

// @router /export/bookmarks [get]
func (c *ExportController) ExportBookmarks() {
	db := connector.Open(nil)
	defer db.Close()
	if _, err := c.IsAuthorized(db); err != nil {
		c.Response(nil, err)
		return
	}
	bookmarks, err := favorg.NewBookmarkService(db).List(utils.Record{
		"category": c.Ctx.Input.Query("category"),
		"status":   c.Ctx.Input.Query("status"),
	})
	if err != nil {
		c.Response(nil, err)
		return
	}
	switch format := c.Ctx.Input.Query("format"); format {
	case "", "json":
		data, err := favorg.RenderJSON(bookmarks)
		if err != nil {
			c.Response(nil, err)
			return
		}
		c.Download("bookmarks", "application/json", data)
	case "csv":
		c.Download("bookmarks", "text/csv", favorg.RenderCSV(bookmarks))
	case "xml":
		data, err := favorg.RenderXML(bookmarks)
		if err != nil {
			c.Response(nil, err)
			return
		}
		c.Download("bookmarks", "text/xml", data)
	case "xlsx":
		rows := make([][]string, 0, len(bookmarks))
		for _, bookmark := range bookmarks {
			row := make([]string, len(favorg.ExportColumns))
			for i, col := range favorg.ExportColumns {
				row[i] = utils.GetString(bookmark, col)
			}
			rows = append(rows, row)
		}
		c.DownloadXLSX("bookmarks", favorg.CSVHeader, rows)
	default:
		c.Response(nil, utils.ValidationError("unbekanntes Exportformat: "+format))
	}
}

// @router /import/bookmarks [post]
func (c *ExportController) ImportBookmarks() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	format := c.Ctx.Input.Query("format")
	if format == "" {
		format = "json"
	}
	report, err := favorg.NewImportService(db).Import(format, c.Ctx.Input.RequestBody, utils.GetInt64(user, "id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if report.Imported > 0 {
		controller.Notify(schema.Bookmarks, "create", 0)
	}
	c.Created(report, nil)
}

// @router /import/test-cases [post]
func (c *ExportController) ImportTestCases() {
	db := connector.Open(nil)
	defer db.Close()
	user, err := c.IsAuthorized(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	suiteID := utils.ToInt64(c.Ctx.Input.Query("suite_id"))
	if suiteID == 0 {
		c.Response(nil, utils.ValidationError("suite_id fehlt"))
		return
	}
	suite, err := qa.NewSuiteService(db).Get(suiteID)
	if err != nil {
		c.Response(nil, err)
		return
	}
	resource, err := resourceInProject(db, schema.TestCases, 0, utils.GetInt64(suite, "project_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionWrite, resource); err != nil {
		c.Response(nil, err)
		return
	}
	rows, errs := parseCaseSheet(c.Ctx.Input.RequestBody)
	report := favorg.ImportReport{Errors: errs}
	if report.Errors == nil {
		report.Errors = []string{}
	}
	caseService := qa.NewCaseService(db)
	for i, row := range rows {
		row["suite_id"] = suiteID
		if _, err := caseService.Create(row, utils.GetInt64(user, "id")); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Zeile %d: %v", i+2, err))
			continue
		}
		report.Imported++
	}
	if report.Imported > 0 {
		controller.Notify(schema.TestCases, "create", 0)
	}
	c.Created(report, nil)
}

// parseCaseSheet reads the first sheet of an XLSX upload. The header row maps
// the columns, so column order does not matter.
func parseCaseSheet(data []byte) (utils.Results, []string) {
	xl, err := xlsxreader.NewReader(data)
	if err != nil {
		return nil, []string{"XLSX nicht lesbar: " + err.Error()}
	}
	if len(xl.Sheets) == 0 {
		return nil, []string{"XLSX enthält kein Arbeitsblatt"}
	}
	fields := map[string]string{
		"test_id":         "test_id",
		"name":            "name",
		"description":     "description",
		"priority":        "priority",
		"expected_result": "expected_result",
	}
	columns := map[string]string{}
	rows := utils.Results{}
	errs := []string{}
	for row := range xl.ReadRows(xl.Sheets[0]) {
		if row.Error != nil {
			errs = append(errs, fmt.Sprintf("Zeile %d: %v", row.Index, row.Error))
			continue
		}
		if len(columns) == 0 {
			for _, cell := range row.Cells {
				key := strings.ToLower(strings.TrimSpace(cell.Value))
				if field, ok := fields[key]; ok {
					columns[cell.Column] = field
				}
			}
			if len(columns) == 0 {
				return nil, []string{"Kopfzeile mit test_id und name fehlt"}
			}
			continue
		}
		record := utils.Record{}
		for _, cell := range row.Cells {
			if field, ok := columns[cell.Column]; ok {
				record[field] = strings.TrimSpace(cell.Value)
			}
		}
		if utils.GetString(record, "name") == "" {
			errs = append(errs, fmt.Sprintf("Zeile %d: Name fehlt", row.Index))
			continue
		}
		if v, ok := record["priority"]; ok {
			record["priority"] = utils.ToInt64(v)
		}
		rows = append(rows, record)
	}
	return rows, errs
}

// @router /export/project/:id [get]
func (c *ExportController) ExportProject() {
	db := connector.Open(nil)
	defer db.Close()
	_, project, err := c.readableProject(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	cols, rows, err := projectReportRows(db, utils.GetInt64(project, "id"), c.Ctx.Input.Query("session_id"))
	if err != nil {
		c.Response(nil, err)
		return
	}
	name := "projekt_" + utils.GetString(project, "name")
	switch format := c.Ctx.Input.Query("format"); format {
	case "", "xlsx":
		c.DownloadXLSX(name, cols, rows)
	case "csv":
		var buf bytes.Buffer
		buf.Write([]byte{0xEF, 0xBB, 0xBF})
		w := csv.NewWriter(&buf)
		w.Write(cols)
		w.WriteAll(rows)
		w.Flush()
		c.Download(name, "text/csv", buf.Bytes())
	case "json":
		out := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			entry := map[string]string{}
			for i, col := range cols {
				entry[col] = row[i]
			}
			out = append(out, entry)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			c.Response(nil, err)
			return
		}
		c.Download(name, "application/json", data)
	default:
		c.Response(nil, utils.ValidationError("unbekanntes Exportformat: "+format))
	}
}

// @router /pdf/generate/:id [get]
func (c *ExportController) GeneratePDF() {
	db := connector.Open(nil)
	defer db.Close()
	_, project, err := c.readableProject(db)
	if err != nil {
		c.Response(nil, err)
		return
	}
	projectID := utils.GetInt64(project, "id")
	sessionID := c.Ctx.Input.Query("session_id")
	stats, err := qa.NewStatsService(db).ForProject(projectID, sessionID)
	if err != nil {
		c.Response(nil, err)
		return
	}
	cols, rows, err := projectReportRows(db, projectID, sessionID)
	if err != nil {
		c.Response(nil, err)
		return
	}
	title := fmt.Sprintf("Testbericht %s: %d/%d getestet, %.1f%% bestanden",
		utils.GetString(project, "name"), stats.TestedCases, stats.TotalCases, stats.PassRate)
	c.DownloadPDFTable("testbericht_"+utils.GetString(project, "name"), title, cols, rows)
}

func (c *ExportController) readableProject(db *connector.Database) (utils.Record, utils.Record, error) {
	user, err := c.IsAuthorized(db)
	if err != nil {
		return nil, nil, err
	}
	project, err := qa.NewProjectService(db).Get(c.IDParam())
	if err != nil {
		return nil, nil, err
	}
	if err := policy.New(db).Authorize(c.Subject(user), policy.ActionRead, projectResource(project)); err != nil {
		return nil, nil, err
	}
	return user, project, nil
}

// projectReportRows flattens the project tree into one row per test case with
// the latest execution result, latest-wins per case.
func projectReportRows(db *connector.Database, projectID int64, sessionID string) ([]string, [][]string, error) {
	cols := []string{"Suite", "Test-ID", "Name", "Priorität", "Status", "Ausgeführt am"}
	suites, err := qa.NewSuiteService(db).ListByProject(projectID)
	if err != nil {
		return nil, nil, err
	}
	caseService := qa.NewCaseService(db)
	resultService := qa.NewResultService(db)
	rows := [][]string{}
	for _, suite := range suites {
		cases, err := caseService.ListBySuite(utils.GetInt64(suite, "id"))
		if err != nil {
			return nil, nil, err
		}
		for _, testCase := range cases {
			status := "ungetestet"
			executedAt := ""
			latest, err := resultService.LatestForCase(utils.GetInt64(testCase, "id"), sessionID)
			if err == nil && latest != nil {
				status = utils.GetString(latest, "status")
				executedAt = utils.GetString(latest, "executed_at")
			}
			rows = append(rows, []string{
				utils.GetString(suite, "name"),
				utils.GetString(testCase, "test_id"),
				utils.GetString(testCase, "name"),
				utils.GetString(testCase, "priority"),
				status,
				executedAt,
			})
		}
	}
	return cols, rows, nil
}
