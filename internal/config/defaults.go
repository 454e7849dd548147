package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// Default returns the embedded default YAML for a config name.
func Default(name string) ([]byte, error) {
	data, err := defaults.ReadFile(path.Join("defaults", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("config: no embedded default for %q", name)
	}
	return data, nil
}

// Names returns the names of all embedded configs.
func Names() []string {
	entries, err := defaults.ReadDir("defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
