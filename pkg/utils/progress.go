package utils

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar renders a single-line progress bar to a diagnostic stream
type ProgressBar struct {
	out         io.Writer
	total       int64
	current     int64
	description string
	startTime   time.Time
	width       int
	showETA     bool
}

// NewProgressBar creates a new progress bar writing to out
func NewProgressBar(out io.Writer, total int64, description string) *ProgressBar {
	return &ProgressBar{
		out:         out,
		total:       total,
		description: description,
		startTime:   time.Now(),
		width:       40,
		showETA:     true,
	}
}

// Update sets the current position
func (pb *ProgressBar) Update(current int64) {
	pb.current = current
	pb.render()
}

// Increment advances the progress by 1
func (pb *ProgressBar) Increment() {
	pb.current++
	pb.render()
}

// SetDescription updates the description
func (pb *ProgressBar) SetDescription(desc string) {
	pb.description = desc
	pb.render()
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() {
	pb.current = pb.total
	pb.render()
	fmt.Fprintln(pb.out)
}

func (pb *ProgressBar) render() {
	if pb.out == nil || pb.total <= 0 {
		return
	}

	current := pb.current
	if current > pb.total {
		current = pb.total
	}

	percentage := float64(current) / float64(pb.total) * 100
	filled := int(float64(pb.width) * float64(current) / float64(pb.total))

	bar := strings.Repeat("#", filled) + strings.Repeat("-", pb.width-filled)

	var eta string
	if pb.showETA && current > 0 && current < pb.total {
		elapsed := time.Since(pb.startTime)
		totalTime := time.Duration(float64(elapsed) * float64(pb.total) / float64(current))
		if remaining := totalTime - elapsed; remaining > 0 {
			eta = fmt.Sprintf(" ETA: %v", remaining.Round(time.Second))
		}
	}

	fmt.Fprintf(pb.out, "\r%s [%s] %.1f%% (%d/%d)%s",
		pb.description, bar, percentage, current, pb.total, eta)
}
