package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"polystat/internal/logger"
	"polystat/internal/model"
)

// Session answers command lines from an input stream against a fixed collection
type Session struct {
	dispatcher *Dispatcher
	polygons   []model.Polygon
	log        *logger.Logger
}

// NewSession creates a session over polygons; a nil log discards output
func NewSession(polygons []model.Polygon, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		dispatcher: NewDispatcher(),
		polygons:   polygons,
		log:        log,
	}
}

// Run executes every line of in until EOF or ctx is done.
// A failing command prints InvalidCommandMessage and the session continues.
//
// Lines are read on a separate goroutine so a cancel is honoured while a
// read is blocked. That goroutine exits once in returns from the pending read.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines, readErr := scanLines(ctx, in)
	lineNo := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			lineNo++

			line := strings.TrimSpace(text)
			if line == "" {
				continue
			}

			if err := s.dispatcher.Execute(s.polygons, line, out); err != nil {
				s.log.Debug("Command rejected", "line", lineNo, "command", line, "error", err)
				if _, werr := fmt.Fprintln(out, InvalidCommandMessage); werr != nil {
					return werr
				}
			}
		}
	}
}

// scanLines feeds the lines of in to the returned channel. The error channel
// receives the scan result before lines is closed.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
