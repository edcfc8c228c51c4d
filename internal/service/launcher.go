package service

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	tderr "github.com/termdock/termdock/internal/errors"
	"github.com/termdock/termdock/internal/model"
)

// Launcher spawns a terminal emulator for a directory. The actual process
// spawning lives in the windowing shell; this seam is all the core knows
// about it.
type Launcher interface {
	Launch(term model.Terminal, dir model.Directory) error
}

// LogLauncher logs the command that would run instead of spawning it.
// Used by serve mode when no shell is attached.
type LogLauncher struct{}

func (LogLauncher) Launch(term model.Terminal, dir model.Directory) error {
	log.Printf("launch %s: %s", dir.Name, term.CommandFor(dir.Path))
	return nil
}

// ExecLauncher spawns the terminal command through the shell and detaches
// from it, so the terminal outlives the CLI process.
type ExecLauncher struct{}

// NewExecLauncher creates a launcher that actually spawns terminals.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

func (*ExecLauncher) Launch(term model.Terminal, dir model.Directory) error {
	command := term.CommandFor(dir.Path)

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", term.Name, err)
	}
	// Reap the child in the background so short runs don't leave zombies.
	go cmd.Wait()
	return nil
}

// LaunchService resolves a directory and its terminal, delegates to the
// Launcher, and stamps lastUsed on success.
type LaunchService struct {
	manager  *Manager
	launcher Launcher
}

// NewLaunchService creates a launch service.
func NewLaunchService(manager *Manager, launcher Launcher) *LaunchService {
	return &LaunchService{manager: manager, launcher: launcher}
}

// Launch opens the directory in its configured terminal.
func (s *LaunchService) Launch(dirID string) error {
	doc := s.manager.Document()

	dir := doc.DirectoryByID(dirID)
	if dir == nil {
		return tderr.DirectoryNotFound(dirID)
	}
	term := doc.TerminalByID(dir.TerminalID)
	if term == nil {
		// The terminal was deleted (or a legacy type never mapped).
		return tderr.TerminalNotFound(dir.TerminalID)
	}

	if err := s.launcher.Launch(*term, *dir); err != nil {
		return err
	}
	return s.manager.MarkLaunched(dirID)
}
