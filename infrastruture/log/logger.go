// Package log builds the component loggers used across the application.
package log

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const colorReset = "\033[0m"

var ErrNilWriter = errors.New("log writer is nil")

// New returns a logger writing human readable lines to w. Every message is
// tagged with [prefix], wrapped in color when color is not empty.
func New(prefix, color string, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		return zerolog.Nop(), ErrNilWriter
	}

	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + colorReset
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    color == "",
		FormatMessage: func(i any) string {
			if i == nil {
				return tag
			}
			return fmt.Sprintf("%s %v", tag, i)
		},
	}

	return zerolog.New(out).With().Timestamp().Logger(), nil
}
