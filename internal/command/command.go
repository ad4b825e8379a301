package command

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"polystat/internal/engine"
	"polystat/internal/metrics"
	"polystat/internal/model"
)

// InvalidCommandMessage is printed for any command that cannot be answered
const InvalidCommandMessage = "<INVALID COMMAND>"

// ErrUnknownCommand is returned for a command line that matches no entry
var ErrUnknownCommand = errors.New("unknown command")

// Handler answers one command for a collection, writing a single line to out.
// args are the tokens after the command word.
type Handler func(polygons []model.Polygon, args []string, out io.Writer) error

// Dispatcher maps command words to handlers
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher returns a dispatcher with the AREA, MAX and MIN commands registered
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: map[string]Handler{
			"AREA": area,
			"MAX":  maxCommand,
			"MIN":  minCommand,
		},
	}
}

// Register adds or replaces the handler for a command word
func (d *Dispatcher) Register(name string, h Handler) {
	d.handlers[name] = h
}

// Execute runs one command line against polygons.
// On failure nothing is written to out.
func (d *Dispatcher) Execute(polygons []model.Polygon, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	name := fields[0]
	handler, ok := d.handlers[name]
	if !ok {
		metrics.ObserveCommand("unknown", ErrUnknownCommand)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	err := handler(polygons, fields[1:], out)
	metrics.ObserveCommand(commandLabel(fields, err), err)
	return err
}

// commandLabel keeps metric label values to a bounded set
func commandLabel(fields []string, err error) string {
	if len(fields) < 2 || errors.Is(err, ErrUnknownCommand) {
		return fields[0]
	}
	if _, err := strconv.Atoi(fields[1]); err == nil {
		return fields[0] + " N"
	}
	return fields[0] + " " + fields[1]
}

func singleArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected 1 argument, got %d", ErrUnknownCommand, len(args))
	}
	return args[0], nil
}

func area(polygons []model.Polygon, args []string, out io.Writer) error {
	arg, err := singleArg(args)
	if err != nil {
		return err
	}

	var result float64
	switch arg {
	case "EVEN":
		result = engine.AreaEven(polygons)
	case "ODD":
		result = engine.AreaOdd(polygons)
	case "MEAN":
		result, err = engine.AreaMean(polygons)
	default:
		n, convErr := strconv.Atoi(arg)
		if convErr != nil {
			return fmt.Errorf("%w: AREA %q", ErrUnknownCommand, arg)
		}
		result, err = engine.AreaVertexes(polygons, n)
	}
	if err != nil {
		return err
	}
	return engine.WriteArea(out, result)
}

func maxCommand(polygons []model.Polygon, args []string, out io.Writer) error {
	arg, err := singleArg(args)
	if err != nil {
		return err
	}

	switch arg {
	case "AREA":
		v, err := engine.MaxArea(polygons)
		if err != nil {
			return err
		}
		return engine.WriteArea(out, v)
	case "VERTEXES":
		v, err := engine.MaxVertexes(polygons)
		if err != nil {
			return err
		}
		return engine.WriteCount(out, v)
	}
	return fmt.Errorf("%w: MAX %q", ErrUnknownCommand, arg)
}

func minCommand(polygons []model.Polygon, args []string, out io.Writer) error {
	arg, err := singleArg(args)
	if err != nil {
		return err
	}

	switch arg {
	case "AREA":
		v, err := engine.MinArea(polygons)
		if err != nil {
			return err
		}
		return engine.WriteArea(out, v)
	case "VERTEXES":
		v, err := engine.MinVertexes(polygons)
		if err != nil {
			return err
		}
		return engine.WriteCount(out, v)
	}
	return fmt.Errorf("%w: MIN %q", ErrUnknownCommand, arg)
}
