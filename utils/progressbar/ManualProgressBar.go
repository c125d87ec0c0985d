// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar which is width
// characters wide, reaches 100% after max increments and is written
// to out
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	if max <= 0 {
		max = 1
	}
	return &ManualProgressBar{
		out:         out,
		width:       float64(width),
		maxProgress: float64(max),
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of the bar that is filled
func (p *ManualProgressBar) Progress() float64 {
	return p.currentProgress / p.maxProgress
}

// Display redraws the progress bar over the current line
func (p *ManualProgressBar) Display() {
	p.bar.Reset()
	p.bar.WriteString("|")

	filled := p.Progress() * p.width
	for i := 0.0; i < filled; i++ {
		p.bar.WriteString("█")
	}
	for i := filled; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	fmt.Fprintf(&p.bar, "| [%.2f%% | elapsed: %v]", p.Progress()*100,
		time.Since(p.startTime).Truncate(time.Second))

	fmt.Fprintf(p.out, "\r\033[K%v", p.bar.String())
}
