package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Filename   string   `yaml:"filename"`
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_backup_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var globalInst = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// InitGlobalLogger initializes the global logger based on the given config.
// Supported targets are "console" and "file"; file output rotates via lumberjack.
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, len(cfg.Targets))

	for _, target := range cfg.Targets {
		switch target {
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	globalInst = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
}

func Debug(msg string, keyvals ...any) {
	withFields(globalInst.Debug(), keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	withFields(globalInst.Info(), keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	withFields(globalInst.Warn(), keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	withFields(globalInst.Error(), keyvals).Msg(msg)
}

func withFields(ev *zerolog.Event, keyvals []any) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		ev = ev.Interface(fmt.Sprint(keyvals[i]), keyvals[i+1])
	}

	return ev
}
