package params

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tableFS embed.FS

// catalogue is the package-level table set, loaded by init().
var catalogue map[string]Table

func init() {
	tables, err := loadFS(tableFS, "tables")
	if err != nil {
		panic(err)
	}
	if err := Validate(tables); err != nil {
		panic(err)
	}
	catalogue = tables
}

// loadFS parses every *.yaml file under dir into a table keyed by module id.
func loadFS(fsys fs.FS, dir string) (map[string]Table, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}

	tables := make(map[string]Table, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		if _, dup := tables[t.Module]; dup {
			return nil, fmt.Errorf("duplicate table for module %q", t.Module)
		}
		tables[t.Module] = t
	}
	return tables, nil
}

// Parse decodes a single YAML table document.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, err
	}
	for n, lvl := range t.Levels {
		lvl.module = t.Module
		lvl.level = n
		t.Levels[n] = lvl
	}
	return t, nil
}

// Lookup returns a copy of the parameters for a module at a level.
func Lookup(module string, level int) (Level, error) {
	t, ok := catalogue[module]
	if !ok {
		return Level{}, fmt.Errorf("params: no table for module %q", module)
	}
	lvl, ok := t.Levels[level]
	if !ok {
		return Level{}, fmt.Errorf("params: module %q has no level %d", module, level)
	}
	return lvl.clone(), nil
}

// Modules returns the ids of every module with a table, sorted.
func Modules() []string {
	ids := make([]string, 0, len(catalogue))
	for id := range catalogue {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether a table exists for the module.
func Has(module string) bool {
	_, ok := catalogue[module]
	return ok
}
