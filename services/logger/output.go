package logsvc

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/code-sharingan/Learning-management-system/core"
)

// NewOutput returns stdout, fanned out to a rotating log file when conf.Log.File is set.
func NewOutput(conf *core.Config) io.Writer {
	if conf.Log.File == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   conf.Log.File,
		MaxSize:    conf.Log.MaxSizeMB,
		MaxBackups: conf.Log.MaxBackups,
		MaxAge:     conf.Log.MaxAgeDays,
		Compress:   true,
	})
}

// NewStdLogger returns a *log.Logger writing to NewOutput(conf).
func NewStdLogger(prefix string, conf *core.Config) *log.Logger {
	return log.New(NewOutput(conf), prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
}
