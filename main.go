package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/milkyway/internal/audio"
	"github.com/olivier-w/milkyway/internal/config"
	"github.com/olivier-w/milkyway/internal/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "milkyway")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if cfg.Import != "" {
		// Check file exists
		info, err := os.Stat(cfg.Import)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", cfg.Import)
			os.Exit(1)
		}

		// Check extension
		ext := strings.ToLower(filepath.Ext(cfg.Import))
		if !audio.IsSupportedExt(ext) {
			fmt.Fprintf(os.Stderr, "Error: unsupported format %s (supported: %s)\n", ext, audio.SupportedExtsList())
			os.Exit(1)
		}
	}

	log.Printf("milkyway starting: fps=%d capacity=%d renderer=%s", cfg.FPS, cfg.Capacity, cfg.Visualizer)

	program := tea.NewProgram(ui.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
