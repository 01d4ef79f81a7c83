package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/terraincognita07/plantdoc/migrations"
	"gorm.io/gorm"
)

var (
	scriptNamePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)
	addColumnPattern  = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+([^\s]+)\s+ADD\s+COLUMN\s+([^\s]+)\b`)
)

type schemaScript struct {
	version string
	order   int
	name    string
	body    string
}

func migrate(database *gorm.DB) error {
	const bookkeeping = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(bookkeeping).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	scripts, err := readSchemaScripts(migrations.Files)
	if err != nil {
		return err
	}

	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		if _, done := applied[script.version]; done {
			continue
		}
		if err := runSchemaScript(database, script); err != nil {
			return err
		}
	}
	return nil
}

func readSchemaScripts(files fs.FS) ([]schemaScript, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	scripts := make([]schemaScript, 0, len(entries))
	owners := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := scriptNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		version := match[1]
		if previous, taken := owners[version]; taken {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, previous, entry.Name())
		}
		owners[version] = entry.Name()

		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		body, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		scripts = append(scripts, schemaScript{version: version, order: order, name: entry.Name(), body: string(body)})
	}

	sort.Slice(scripts, func(i, j int) bool {
		if scripts[i].order != scripts[j].order {
			return scripts[i].order < scripts[j].order
		}
		return scripts[i].name < scripts[j].name
	})
	return scripts, nil
}

func appliedVersions(database *gorm.DB) (map[string]struct{}, error) {
	var versions []string
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make(map[string]struct{}, len(versions))
	for _, version := range versions {
		applied[version] = struct{}{}
	}
	return applied, nil
}

func runSchemaScript(database *gorm.DB, script schemaScript) error {
	statements := splitStatements(script.body)
	if len(statements) == 0 {
		return errors.New("migration has no SQL statements")
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			present, err := addsExistingColumn(tx, statement)
			if err != nil {
				return fmt.Errorf("inspect migration %s: %w", script.name, err)
			}
			if present {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", script.name, statement, err)
			}
		}

		if err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`, script.version, script.name).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", script.name, err)
		}
		return nil
	})
}

func splitStatements(body string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(body, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// addsExistingColumn reports whether statement is an ADD COLUMN for a column
// the table already has, so databases patched by hand can still be upgraded.
func addsExistingColumn(database *gorm.DB, statement string) (bool, error) {
	match := addColumnPattern.FindStringSubmatch(statement)
	if match == nil {
		return false, nil
	}

	table := unquoteIdentifier(match[1])
	column := unquoteIdentifier(match[2])

	var columns []struct {
		Name string `gorm:"column:name"`
	}
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))
	if err := database.Raw(query).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(strings.TrimSpace(existing.Name), column) {
			return true, nil
		}
	}
	return false, nil
}

func unquoteIdentifier(identifier string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(identifier), "\"`[]"))
}
