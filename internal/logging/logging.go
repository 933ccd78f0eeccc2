package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/xvzc/ordtree/internal/appctx"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName = "scope"
	runIDFieldName = "run_id"
)

// NewLogger creates a console logger writing to w at the given level.
// The logger is handed to components explicitly rather than stored globally.
func NewLogger(w io.Writer, l zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.RFC3339,
		// FormatPrepare turns the scope into [SCOPE] and blanks out missing fields
		// so zerolog does not print <nil> for them.
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[runIDFieldName].(string); !ok || v == "" {
				m[runIDFieldName] = ""
			}

			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[app]"
			}

			return nil
		},
		FieldsExclude: []string{runIDFieldName, scopeFieldName},
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			runIDFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).
		Level(l).
		Hook(ctxHook{}).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithScope returns a sub-logger tagged with a component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ctxHook copies the run id from a context attached with .Ctx(ctx).
type ctxHook struct{}

func (h ctxHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	if runID, ok := appctx.RunIDFrom(ctx); ok {
		e.Str(runIDFieldName, runID)
	}
}

type joinableError interface {
	Unwrap() []error
}

// ErrorUnwrapped logs every error of a joined error on its own line.
// A plain error is logged once.
func ErrorUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.ErrorLevel, msg, err)
}

func WarnUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.WarnLevel, msg, err)
}

func logUnwrapped(logger *zerolog.Logger, level zerolog.Level, msg string, err error) {
	var joinedErrs joinableError

	if errors.As(err, &joinedErrs) {
		for _, e := range joinedErrs.Unwrap() {
			logger.WithLevel(level).Err(e).Msg(msg)
		}

		return
	}

	logger.WithLevel(level).Err(err).Msg(msg)
}
