package ports

import "os/exec"

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for opening a file in the editor.
	// bubbletea runs it through ExecProcess so the TUI is suspended meanwhile.
	Command(path string) (*exec.Cmd, error)
}
