package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type fileLogger struct {
	mu      sync.RWMutex
	logFile *os.File
	zl      *zap.Logger
}

// NewFileLogger grava logs em JSON num arquivo novo por execução, a TUI ocupa o stdout
func NewFileLogger(logDir, logPrefix, level string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFileName := fmt.Sprintf("%s_%s.json", logPrefix, timestamp)

	logFilePath := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		parsedLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), parsedLevel)

	return &fileLogger{
		logFile: file,
		// closure -> write -> Info/Error/Warning: o caller registrado é quem chamou o logger
		zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(3)),
	}, nil
}

// NewNop discards everything.
func NewNop() Logger {
	return &fileLogger{zl: zap.NewNop()}
}

func (l *fileLogger) write(fn func(zl *zap.Logger), msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.zl == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping message: %s\n", msg)
		return
	}

	fn(l.zl)
}

func (l *fileLogger) Info(msg string) {
	l.write(func(zl *zap.Logger) { zl.Info(msg) }, msg)
}

func (l *fileLogger) Error(msg string, err error) {
	l.write(func(zl *zap.Logger) { zl.Error(msg, zap.Error(err)) }, msg)
}

func (l *fileLogger) Warning(msg string) {
	l.write(func(zl *zap.Logger) { zl.Warn(msg) }, msg)
}

func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.zl != nil {
		_ = l.zl.Sync()
		l.zl = nil
	}

	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error while closing log file: %v\n", err)
		}
		l.logFile = nil
	}
}
