package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Logger is the structured logger used across the module. Each logger is
// bound to a component name, and components can be muted at runtime through
// ApplyComponentsFilter.
type Logger = zerolog.Logger

var GlobalLogger Logger

var (
	componentsFilter = make(map[string]bool)
	all              = true
	lock             = sync.RWMutex{}
)

// ComponentFilterWriter drops log lines whose component is filtered out.
type ComponentFilterWriter struct {
	Writer io.Writer
	Name   string
}

func (w ComponentFilterWriter) Write(p []byte) (n int, err error) {
	var log map[string]any
	if err := json.Unmarshal(p, &log); err != nil {
		return 0, err
	}

	lock.RLock()
	enabled, found := componentsFilter[w.Name]
	lock.RUnlock()

	if !found {
		enabled = all
	}
	if !enabled {
		return len(p), nil
	}
	return w.Writer.Write(p)
}

// ApplyComponentsFilterEnv reads the filter spec from VAULT_LOG_FILTER.
func ApplyComponentsFilterEnv() {
	if logFilter := os.Getenv("VAULT_LOG_FILTER"); logFilter != "" {
		ApplyComponentsFilter(logFilter)
	}
}

// ApplyComponentsFilter enables or disables components by name. The spec is a
// colon-separated list of component names, each optionally prefixed with '-'
// to disable it; "all" addresses every component at once.
func ApplyComponentsFilter(filter string) {
	comps := strings.Split(filter, ":")

	lock.Lock()
	defer lock.Unlock()

	for _, comp := range comps {
		if comp == "" {
			continue
		}

		enabled := true
		if comp[0] == '-' {
			enabled = false
			comp = comp[1:]
		}

		if comp == "all" {
			all = enabled
			for k := range componentsFilter {
				componentsFilter[k] = enabled
			}
		} else {
			componentsFilter[comp] = enabled
		}
	}
}

func SetupGlobalLogger(level string) {
	if err := TrySetupGlobalLevel(level); err != nil {
		panic(err)
	}
	GlobalLogger = NewLogger("global")
}

func TrySetupGlobalLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// SetLogSeverityFromEnv sets the global level from LOG_LEVEL, defaulting to INFO.
func SetLogSeverityFromEnv() {
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}
}

// NewLogger returns a console logger bound to the given component.
func NewLogger(component string) Logger {
	return newConsoleLogger(component).With().
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

// NewLoggerWithWriter returns a JSON logger bound to the given component that
// writes to the given writer. Mainly useful in tests.
func NewLoggerWithWriter(component string, writer io.Writer) Logger {
	logger := zerolog.New(ComponentFilterWriter{
		Writer: writer,
		Name:   component,
	})

	return logger.With().
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

func newConsoleLogger(component string) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		NoColor: noColor,
	}
	return zerolog.New(ComponentFilterWriter{
		Writer: consoleWriter,
		Name:   component,
	})
}

func Nop() Logger {
	return zerolog.Nop()
}
