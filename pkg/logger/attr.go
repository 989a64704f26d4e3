package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Rules records how many rules took part in a validation pass.
func Rules(n int) slog.Attr {
	return slog.Int("rules", n)
}

// Violations records the violation messages of a validation pass.
func Violations(messages []string) slog.Attr {
	return slog.Any("violations", messages)
}

// Draft records whether the object was in draft mode.
func Draft(draft bool) slog.Attr {
	return slog.Bool("draft", draft)
}

// Mode records the validation mode of a pass.
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// DraftID records a persisted draft identifier under the key "draft_id".
func DraftID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("draft_id", id)
}

// Backend records the storage backend name.
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
