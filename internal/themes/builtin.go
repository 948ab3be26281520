package themes

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// SourceBuiltin marks presets bundled with the binary.
const SourceBuiltin = "builtin"

// LoadBuiltinThemes returns the bundled presets in registration order,
// which is the order of their file names.
func LoadBuiltinThemes() ([]*Config, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	themes := make([]*Config, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", entry.Name(), err)
		}
		theme, err := parseTheme(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", entry.Name(), err)
		}
		theme.Source = SourceBuiltin
		themes = append(themes, theme)
	}

	return themes, nil
}
