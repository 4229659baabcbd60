package log

import (
	"github.com/joeycumines/logiface"
)

// entryEvent is a minimal logiface.Event implementation that accumulates
// exactly what an Entry needs, mirroring the pattern eventloop's own test
// suite uses to plug logiface into a package-specific Logger interface
// (see eventloop's testEvent).
type entryEvent struct {
	logiface.UnimplementedEvent
	level logiface.Level
	entry Entry
}

func (e *entryEvent) Level() logiface.Level { return e.level }

func (e *entryEvent) AddField(key string, val any) {
	switch key {
	case "handler":
		if id, ok := val.(int); ok {
			e.entry.HandlerID = id
			return
		}
	case "task":
		if id, ok := val.(int); ok {
			e.entry.TaskID = id
			return
		}
	}
	if e.entry.Fields == nil {
		e.entry.Fields = make(map[string]any, 4)
	}
	e.entry.Fields[key] = val
}

func (e *entryEvent) AddMessage(msg string) bool {
	e.entry.Message = msg
	return true
}

func (e *entryEvent) AddError(err error) bool {
	e.entry.Err = err
	return true
}

type entryEventFactory struct{}

func (entryEventFactory) NewEvent(level logiface.Level) *entryEvent {
	return &entryEvent{level: level}
}

// entryEventWriter forwards a finished logiface event to a Logger, translating
// the syslog-style logiface.Level back to this package's four-level scale.
type entryEventWriter struct {
	category string
	target   Logger
}

func (w entryEventWriter) Write(e *entryEvent) error {
	entry := e.entry
	entry.Category = w.category
	entry.Level = fromLogifaceLevel(e.level)
	w.target.Log(entry)
	return nil
}

func toLogifaceLevel(l Level) logiface.Level {
	switch l {
	case LevelDebug:
		return logiface.LevelDebug
	case LevelInfo:
		return logiface.LevelInformational
	case LevelWarn:
		return logiface.LevelWarning
	case LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}

func fromLogifaceLevel(l logiface.Level) Level {
	switch {
	case l <= logiface.LevelError:
		return LevelError
	case l <= logiface.LevelWarning:
		return LevelWarn
	case l <= logiface.LevelInformational:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// logifaceLogger adapts a *logiface.Logger[*entryEvent] to this package's
// Logger interface, so capability/task/kernel code can log through logiface
// (and whatever logiface.Writer the caller ultimately configures - zerolog,
// slog, stumpy, ...) without depending on any particular backend.
type logifaceLogger struct {
	typed *logiface.Logger[*entryEvent]
}

// NewLogifaceLogger adapts target (anything implementing logiface.Writer for
// our event type) into a Logger, routing every Entry through logiface's
// Builder chain instead of writing it out directly. minLevel is translated to
// logiface's syslog-style scale and filters at the logiface.Logger layer.
func NewLogifaceLogger(target logiface.Writer[*entryEvent], minLevel Level) Logger {
	typed := logiface.New[*entryEvent](
		logiface.WithEventFactory[*entryEvent](entryEventFactory{}),
		logiface.WithWriter[*entryEvent](target),
		logiface.WithLevel[*entryEvent](toLogifaceLevel(minLevel)),
	)
	return &logifaceLogger{typed: typed}
}

func (l *logifaceLogger) Log(e Entry) {
	b := l.typed.Build(toLogifaceLevel(e.Level))
	if b == nil {
		return
	}
	if e.HandlerID != 0 {
		b = b.Field("handler", e.HandlerID)
	}
	if e.TaskID != 0 {
		b = b.Field("task", e.TaskID)
	}
	for k, v := range e.Fields {
		b = b.Field(k, v)
	}
	if e.Err != nil {
		b = b.Err(e.Err)
	}
	b.Log(e.Message)
}

// NewLogifaceWriterLogger is a convenience that writes through target (a
// Logger, e.g. a NewTextLogger) via logiface's event/writer contract, instead
// of calling it directly. Useful to exercise logiface's Builder/Field
// pipeline (rate limiting, level filtering, JSON support) in front of an
// existing sink.
func NewLogifaceWriterLogger(category string, target Logger, minLevel Level) Logger {
	return NewLogifaceLogger(entryEventWriter{category: category, target: target}, minLevel)
}
