package schema

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/rs/zerolog/log"
)

// SuiteTemplate is one default suite created when a project is created.
type SuiteTemplate struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

// Compiled-in defaults, overridable by conf/templates.yaml.
var suiteTemplates = map[string][]SuiteTemplate{
	"web_app_qa": {
		{Name: "UI/UX Tests", Icon: "layout", SortOrder: 1},
		{Name: "Funktionalität", Icon: "check-square", SortOrder: 2},
		{Name: "Performance", Icon: "zap", SortOrder: 3},
		{Name: "Sicherheit", Icon: "shield", SortOrder: 4},
		{Name: "Kompatibilität", Icon: "monitor", SortOrder: 5},
	},
	"mobile_app_qa": {
		{Name: "UI/UX Tests", Icon: "layout", SortOrder: 1},
		{Name: "Funktionalität", Icon: "check-square", SortOrder: 2},
		{Name: "Performance", Icon: "zap", SortOrder: 3},
		{Name: "Gerätekompatibilität", Icon: "smartphone", SortOrder: 4},
		{Name: "Offline-Verhalten", Icon: "wifi-off", SortOrder: 5},
	},
	"api_testing": {
		{Name: "Endpunkt-Tests", Icon: "link", SortOrder: 1},
		{Name: "Authentifizierung", Icon: "key", SortOrder: 2},
		{Name: "Datenvalidierung", Icon: "database", SortOrder: 3},
		{Name: "Performance", Icon: "zap", SortOrder: 4},
		{Name: "Sicherheit", Icon: "shield", SortOrder: 5},
	},
	"custom": {},
}

// TemplateTypes lists the accepted template_type values.
func TemplateTypes() []string {
	return []string{"web_app_qa", "mobile_app_qa", "api_testing", "custom"}
}

// TemplateSuites returns the default suites for a template type,
// nil for an unknown type.
func TemplateSuites(templateType string) ([]SuiteTemplate, bool) {
	suites, ok := suiteTemplates[templateType]
	return suites, ok
}

// LoadTemplates replaces the compiled-in suite templates from a yaml file.
// A missing file keeps the defaults.
func LoadTemplates(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	loaded := map[string][]SuiteTemplate{}
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		log.Error().Err(err).Str("path", path).Msg("invalid template file, keeping defaults")
		return
	}
	for typ, suites := range loaded {
		suiteTemplates[typ] = suites
	}
}
