package ui

import (
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/milkyway/internal/audio"
	"github.com/olivier-w/milkyway/internal/fourier"
)

type frameMsg time.Time

type curveLoadedMsg struct {
	curve      audio.Curve
	components []fourier.Component // transform of curve.Samples before scaling
	err        error
}

type scopePathMsg struct {
	gen   int
	path  []image.Point
	pivot image.Point
}

type fileExportedMsg struct {
	name string
	err  error
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
