package level

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed demo/level.toml demo/*.lua
var demoFS embed.FS

// DemoFS returns the bundled demo level directory
func DemoFS() fs.FS {
	sub, err := fs.Sub(demoFS, "demo")
	if err != nil {
		panic(fmt.Sprintf("level: embedded demo: %v", err))
	}
	return sub
}

// LoadDemo decodes the bundled level
// A non-empty scriptDir replaces the bundled Lua files with files from disk
func LoadDemo(scriptDir string) (Definition, fs.FS, error) {
	dir := DemoFS()
	data, err := fs.ReadFile(dir, "level.toml")
	if err != nil {
		return Definition{}, nil, fmt.Errorf("level: %w", err)
	}
	def, err := DecodeDefinition(bytes.NewReader(data))
	if err != nil {
		return Definition{}, nil, err
	}
	if scriptDir != "" {
		return def, os.DirFS(scriptDir), nil
	}
	return def, dir, nil
}
