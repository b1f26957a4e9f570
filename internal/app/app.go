package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/termbridge/internal/config"
	"github.com/kyaoi/termbridge/internal/ui"
	"github.com/kyaoi/termbridge/internal/window"
)

const debugLogName = "termbridge-debug.log"

// Run brings the bridge up for the current terminal and executes the Bubble
// Tea host program.
func Run(cfg config.Config) error {
	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// The page zoom goes through the zoom map, so the DPI is measured at 1.0.
	metrics := window.Read(1)
	session := BringUp(cfg, metrics, logger)
	return runProgram(session.UIState(), cfg)
}

func runProgram(state ui.State, cfg config.Config) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.FPS > 0 {
		opts = append(opts, tea.WithFPS(int(cfg.FPS)))
	}
	model := ui.NewModel(state)
	defer model.Close()

	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	return err
}

func openLog(cfg config.Config) (*log.Logger, func(), error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return log.Default(), func() {}, nil
	}
	path := debugLogName
	if cfg.ConfigFile != "" {
		path = filepath.Join(filepath.Dir(cfg.ConfigFile), debugLogName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create debug log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "termbridge")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}
