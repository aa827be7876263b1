// Package logger provides the leveled loggers used across cellcheck.
// Log output goes to stderr so it never mixes with a rendered report on
// stdout, and optionally to a log file as well.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog  *log.Logger
	WarnLog  *log.Logger
	ErrorLog *log.Logger
	logFile  *os.File
)

// InitLogger initializes the loggers with a file output in addition to
// the console.
func InitLogger(filename string) error {
	var err error
	logFile, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	multiWriter := io.MultiWriter(os.Stderr, logFile)
	InfoLog = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime)
	WarnLog = log.New(multiWriter, "WARN: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime)
	return nil
}

// Init sets up console-only loggers. Called lazily so library code can
// log without any setup.
func Init() {
	InfoLog = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	WarnLog = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

func Infof(format string, v ...interface{}) {
	if InfoLog == nil {
		Init()
	}
	InfoLog.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	if WarnLog == nil {
		Init()
	}
	WarnLog.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	if ErrorLog == nil {
		Init()
	}
	ErrorLog.Printf(format, v...)
}
