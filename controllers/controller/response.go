package controller

import (
	"net/http"
	"time"

	"qareport-ws/domain/utils"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

// Response rules every http response. The error type decides the status,
// never the message text.
func (t *AbstractController) Response(resp interface{}, err error) {
	t.Ctx.Output.SetStatus(utils.HTTPStatus(err))
	if err != nil {
		t.Data[JSON] = map[string]interface{}{DATA: utils.Results{}, ERROR: err.Error()}
	} else {
		if resp == nil {
			resp = utils.Results{}
		}
		t.Data[JSON] = map[string]interface{}{DATA: resp, ERROR: nil}
	}
	t.ServeJSON()
}

// Created responds 201 with the fresh record.
func (t *AbstractController) Created(resp interface{}, err error) {
	if err != nil {
		t.Response(resp, err)
		return
	}
	t.Ctx.Output.SetStatus(http.StatusCreated)
	t.Data[JSON] = map[string]interface{}{DATA: resp, ERROR: nil}
	t.ServeJSON()
}

// Download streams raw bytes as an attachment.
func (t *AbstractController) Download(name string, contentType string, data []byte) {
	t.Ctx.ResponseWriter.Header().Set("Content-Type", contentType)
	t.Ctx.ResponseWriter.Header().Set("Content-Disposition",
		"attachment; filename="+name+"_"+time.Now().Format("2006-01-02_15-04-05")+filenameExt(contentType))
	t.Ctx.ResponseWriter.Write(data)
}

func filenameExt(contentType string) string {
	switch contentType {
	case "text/csv":
		return ".csv"
	case "application/json":
		return ".json"
	case "text/xml":
		return ".xml"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return ".xlsx"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

// DownloadXLSX renders a single-sheet workbook from columns and rows.
func (t *AbstractController) DownloadXLSX(name string, cols []string, rows [][]string) {
	file := xlsx.NewFile()
	sheet, _ := file.AddSheet("Sheet1")
	headerRow := sheet.AddRow()
	for _, c := range cols {
		headerRow.AddCell().Value = c
	}
	for _, r := range rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().Value = v
		}
	}
	t.Ctx.ResponseWriter.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	t.Ctx.ResponseWriter.Header().Set("Content-Disposition",
		"attachment; filename="+name+"_"+time.Now().Format("2006-01-02_15-04-05")+".xlsx")
	file.Write(t.Ctx.ResponseWriter)
}

// DownloadPDFTable renders a plain bordered table.
func (t *AbstractController) DownloadPDFTable(name string, title string, cols []string, rows [][]string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	width := 190.0 / float64(len(cols))
	for _, c := range cols {
		pdf.CellFormat(width, 8, tr(c), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		for _, v := range r {
			pdf.CellFormat(width, 7, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	t.Ctx.ResponseWriter.Header().Set("Content-Type", "application/pdf")
	t.Ctx.ResponseWriter.Header().Set("Content-Disposition",
		"attachment; filename="+name+"_"+time.Now().Format("2006-01-02_15-04-05")+".pdf")
	pdf.Output(t.Ctx.ResponseWriter)
}
