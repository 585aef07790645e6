package note

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoteExists is returned by Vault.CreateFile when the target path is taken.
var ErrNoteExists = errors.New("note already exists")

// Vault is the note storage the assembler writes into.
type Vault interface {
	// EnsureFolder creates the notes folder if needed and returns its
	// vault-relative path.
	EnsureFolder() (string, error)

	// CreateFile writes content to a new vault-relative path. It never
	// overwrites; an existing path fails with ErrNoteExists.
	CreateFile(path, content string) error
}

// Notifier shows short user-facing messages.
type Notifier interface {
	Notify(msg string)
}

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(msg string)

// Notify calls f(msg).
func (f NotifyFunc) Notify(msg string) {
	f(msg)
}

// FSVault stores notes as plain files below Root.
type FSVault struct {
	Root   string // Vault directory
	Folder string // Notes folder, relative to Root
}

// EnsureFolder creates Root/Folder if it does not exist
func (v FSVault) EnsureFolder() (string, error) {
	if err := os.MkdirAll(filepath.Join(v.Root, v.Folder), 0755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", v.Folder, err)
	}
	return v.Folder, nil
}

// CreateFile writes a new file below Root
func (v FSVault) CreateFile(path, content string) error {
	f, err := os.OpenFile(filepath.Join(v.Root, path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrNoteExists, path)
		}
		return fmt.Errorf("failed to create note: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write note: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close note: %w", err)
	}

	return nil
}
