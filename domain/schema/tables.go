package schema

import (
	connector "qareport-ws/infrastructure/connector/db"
)

// Fixed table set. The service owns its schema, there is no dynamic
// table registration.
const (
	Users          = "users"
	Companies      = "companies"
	Projects       = "projects"
	TestSuites     = "test_suites"
	TestCases      = "test_cases"
	TestResults    = "test_results"
	ProjectMembers = "project_members"
	Bookmarks      = "bookmarks"
	Categories     = "categories"
	Archives       = "archives"
)

// SystemCompany must never be deleted, bulk deletes exclude it by name.
const SystemCompany = "ID2"

// SentinelCategory receives bookmarks whose category is deleted.
const SentinelCategory = "Nicht zugeordnet"

var tableColumns = map[string]string{
	Users: `name TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'qa_tester',
		company_id INTEGER,
		language TEXT DEFAULT 'de',
		is_active BOOLEAN NOT NULL DEFAULT TRUE`,
	Companies: `name TEXT NOT NULL,
		description TEXT,
		created_by INTEGER`,
	Projects: `company_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		template_type TEXT NOT NULL DEFAULT 'custom',
		status TEXT NOT NULL DEFAULT 'active',
		created_by INTEGER`,
	TestSuites: `project_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		icon TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0`,
	TestCases: `suite_id INTEGER NOT NULL,
		test_id TEXT,
		name TEXT NOT NULL,
		description TEXT,
		priority INTEGER NOT NULL DEFAULT 3,
		expected_result TEXT,
		is_predefined BOOLEAN NOT NULL DEFAULT FALSE,
		created_by INTEGER`,
	TestResults: `case_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		executed_by INTEGER,
		executed_at TIMESTAMP NOT NULL,
		session_id TEXT`,
	ProjectMembers: `project_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		grant_level TEXT NOT NULL DEFAULT 'viewer'`,
	Bookmarks: `title TEXT NOT NULL,
		url TEXT NOT NULL,
		category TEXT,
		subcategory TEXT,
		status TEXT NOT NULL DEFAULT 'unchecked',
		created_by INTEGER`,
	Categories: `name TEXT NOT NULL,
		parent_category TEXT,
		created_by INTEGER,
		created_at TIMESTAMP`,
	Archives: `entity TEXT NOT NULL,
		payload TEXT,
		archived_at TIMESTAMP NOT NULL`,
}

// TableNames returns the creation order.
func TableNames() []string {
	return []string{
		Users, Companies, Projects, TestSuites, TestCases, TestResults,
		ProjectMembers, Bookmarks, Categories, Archives,
	}
}

// BuildCreateTableQuery emits driver-specific DDL, the id column being the
// only divergence between postgres and mysql.
func BuildCreateTableQuery(driver string, name string) string {
	id := "id SERIAL PRIMARY KEY"
	if driver == connector.MySQLDriver {
		id = "id INTEGER PRIMARY KEY AUTO_INCREMENT"
	}
	return "CREATE TABLE IF NOT EXISTS " + name + " (" + id + ", " + tableColumns[name] + ")"
}
