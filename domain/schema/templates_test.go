package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateSuitesWebApp(t *testing.T) {
	suites, ok := TemplateSuites("web_app_qa")
	require.True(t, ok)
	names := []string{}
	for _, suite := range suites {
		names = append(names, suite.Name)
	}
	assert.Equal(t, []string{"UI/UX Tests", "Funktionalität", "Performance", "Sicherheit", "Kompatibilität"}, names)
}

func TestTemplateSuitesCustomIsEmpty(t *testing.T) {
	suites, ok := TemplateSuites("custom")
	require.True(t, ok)
	assert.Empty(t, suites)
}

func TestTemplateSuitesUnknownType(t *testing.T) {
	_, ok := TemplateSuites("desktop_qa")
	assert.False(t, ok)
}

func TestTemplateSuitesOrdered(t *testing.T) {
	for _, typ := range TemplateTypes() {
		suites, ok := TemplateSuites(typ)
		require.True(t, ok)
		for i := 1; i < len(suites); i++ {
			assert.Less(t, suites[i-1].SortOrder, suites[i].SortOrder, "type %s", typ)
		}
	}
}
