package render

import (
	"context"
	"fmt"
	"log"
)

// Resumed drives the resumed CLI against a named theme.
type Resumed struct {
	Runner  Runner
	Command []string // e.g. ["npx", "resumed"]
	Theme   string
	Verbose bool
}

// NewResumed returns a Resumed that runs command through runner.
func NewResumed(runner Runner, command []string, theme string) *Resumed {
	return &Resumed{Runner: runner, Command: command, Theme: theme}
}

// Render writes the themed HTML for source to out.
func (r *Resumed) Render(ctx context.Context, source, out string) error {
	if err := r.run(ctx, "render", source, out); err != nil {
		return fmt.Errorf("failed to render %s: %w", source, err)
	}
	return nil
}

// Export writes a PDF for source to out using the renderer's own exporter.
func (r *Resumed) Export(ctx context.Context, source, out string) error {
	if err := r.run(ctx, "export", source, out); err != nil {
		return fmt.Errorf("failed to export %s: %w", source, err)
	}
	return nil
}

func (r *Resumed) run(ctx context.Context, sub, source, out string) error {
	if len(r.Command) == 0 {
		return &CommandError{Command: sub, Message: "renderer command is empty"}
	}

	args := make([]string, 0, len(r.Command)+5)
	args = append(args, r.Command[1:]...)
	args = append(args, sub, source, "-t", r.Theme, "-o", out)

	if r.Verbose {
		log.Printf("[RENDER] %s %v", r.Command[0], args)
	}
	return r.Runner.Run(ctx, r.Command[0], args...)
}
