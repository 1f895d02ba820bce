//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// produceTOML is a small grouped catalogue shared by the TUI tests
const produceTOML = `
[[option]]
value = "apple"
label = "Apple"
group = "Fruit"

[[option]]
value = "banana"
label = "Banana"
group = "Fruit"

[[option]]
value = "carrot"
label = "Carrot"
group = "Veg"

[[option]]
value = "leek"
label = "Leek"
group = "Veg"
disabled = true
`

// CreateTestWorkspace creates a temporary directory used as HOME and cwd
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalogue writes a catalogue file into the workspace
func (tf *TUITestFramework) WriteCatalogue(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write catalogue: %w", err)
	}
	return path, nil
}

// Produce creates the workspace and the shared grouped catalogue
func (tf *TUITestFramework) Produce() (string, error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	return tf.WriteCatalogue("produce.toml", produceTOML)
}
