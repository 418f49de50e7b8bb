package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"
)

const migrationTemplate = `-- Migration: {{.Name}}{{if .Down}} (rollback){{end}}
-- Dialect: {{.Dialect}}
-- Created: {{.Timestamp}}
-- Description: {{.Description}}

`

// MigrationFile is one generated up/down pair for a dialect
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Dialect     string
	Timestamp   string
	UpPath      string
	DownPath    string
}

var versionPrefix = regexp.MustCompile(`^(\d+)_`)

// CreateMigration writes an empty up/down pair for every dialect under root
// (root/sqlite3, root/postgres). All pairs share the next sequence number.
func CreateMigration(root, name, description string) ([]*MigrationFile, error) {
	base := sanitizeName(name)
	if base == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}

	dialects := []string{DialectSQLite, DialectPostgres}
	next := 1
	for _, d := range dialects {
		v, err := latestVersion(filepath.Join(root, d))
		if err != nil {
			return nil, err
		}
		if v+1 > next {
			next = v + 1
		}
	}
	version := fmt.Sprintf("%06d", next)
	timestamp := time.Now().Format(time.RFC3339)

	files := make([]*MigrationFile, 0, len(dialects))
	for _, d := range dialects {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create migrations directory: %w", err)
		}
		mf := &MigrationFile{
			Version:     version,
			Name:        name,
			Description: description,
			Dialect:     d,
			Timestamp:   timestamp,
			UpPath:      filepath.Join(dir, version+"_"+base+".up.sql"),
			DownPath:    filepath.Join(dir, version+"_"+base+".down.sql"),
		}
		if err := writeMigrationFile(mf.UpPath, mf, false); err != nil {
			return nil, fmt.Errorf("failed to create up migration: %w", err)
		}
		if err := writeMigrationFile(mf.DownPath, mf, true); err != nil {
			_ = os.Remove(mf.UpPath)
			return nil, fmt.Errorf("failed to create down migration: %w", err)
		}
		files = append(files, mf)
	}
	return files, nil
}

func writeMigrationFile(path string, mf *MigrationFile, down bool) error {
	tmpl, err := template.New("migration").Parse(migrationTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	data := struct {
		*MigrationFile
		Down bool
	}{mf, down}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

func latestVersion(dir string) (int, error) {
	names, err := ListMigrations(dir)
	if err != nil {
		return 0, err
	}
	latest := 0
	for _, n := range names {
		m := versionPrefix.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err == nil && v > latest {
			latest = v
		}
	}
	return latest, nil
}

// sanitizeName lowercases a migration name and joins words with underscores
func sanitizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '_':
			pendingSep = true
		}
	}
	return b.String()
}

// ListMigrations returns the sorted base names of the up migrations in dir
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	migrations := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok && base != "" {
			migrations = append(migrations, base)
		}
	}
	sort.Strings(migrations)
	return migrations, nil
}
