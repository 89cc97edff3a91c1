package favorg

import (
	"testing"

	"qareport-ws/domain/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBookmarks() utils.Results {
	return utils.Results{
		{"title": "Golang", "url": "https://go.dev", "category": "Dev", "subcategory": "Sprachen", "status": StatusActive},
		{"title": "Heise", "url": "https://heise.de", "category": "News", "subcategory": "", "status": StatusUnchecked},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	data := RenderCSV(sampleBookmarks())
	rows, errs := ParseCSV(data)
	require.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Golang", utils.GetString(rows[0], "title"))
	assert.Equal(t, "https://go.dev", utils.GetString(rows[0], "url"))
	assert.Equal(t, "Sprachen", utils.GetString(rows[0], "subcategory"))
	assert.Equal(t, StatusUnchecked, utils.GetString(rows[1], "status"))
}

func TestParseCSVRejectsWrongHeader(t *testing.T) {
	rows, errs := ParseCSV([]byte("Name,Link\nfoo,https://example.com\n"))
	assert.Nil(t, rows)
	require.Len(t, errs, 1)
}

func TestParseCSVReportsBadRows(t *testing.T) {
	data := []byte("Title,URL\nGolang,https://go.dev\n,https://missing-title.example\n")
	rows, errs := ParseCSV(data)
	assert.Len(t, rows, 1)
	assert.Len(t, errs, 1)
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := RenderJSON(sampleBookmarks())
	require.NoError(t, err)
	rows, errs := ParseJSON(data)
	require.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, "News", utils.GetString(rows[1], "category"))
}

func TestParseJSONChromeTree(t *testing.T) {
	data := []byte(`{"roots":{"bookmark_bar":{"name":"Lesezeichenleiste","children":[
		{"name":"Golang","url":"https://go.dev"},
		{"name":"Ordner","children":[{"name":"Heise","url":"https://heise.de"}]}
	]}}}`)
	rows, errs := ParseJSON(data)
	require.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Lesezeichenleiste", utils.GetString(rows[0], "category"))
	assert.Equal(t, "Ordner", utils.GetString(rows[1], "category"))
}

func TestXMLRoundTrip(t *testing.T) {
	data, err := RenderXML(sampleBookmarks())
	require.NoError(t, err)
	rows, errs := ParseXML(data)
	require.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, "https://heise.de", utils.GetString(rows[1], "url"))
}

func TestParseHTMLNetscapeExport(t *testing.T) {
	data := []byte(`<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
	<DT><H3 ADD_DATE="1690000000">Entwicklung</H3>
	<DL><p>
		<DT><A HREF="https://go.dev" ADD_DATE="1690000000">Golang</A>
	</DL><p>
	<DT><A HREF="https://heise.de">Heise</A>
</DL><p>`)
	rows, errs := ParseHTML(data)
	require.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Entwicklung", utils.GetString(rows[0], "category"))
	assert.Equal(t, "Golang", utils.GetString(rows[0], "title"))
}

func TestParseHTMLEmpty(t *testing.T) {
	rows, errs := ParseHTML([]byte("<html><body>nichts</body></html>"))
	assert.Nil(t, rows)
	assert.Len(t, errs, 1)
}
