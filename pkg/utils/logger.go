package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ColorCode returns the ANSI color code for the log level
func (l LogLevel) ColorCode() string {
	switch l {
	case LogLevelDebug:
		return "\033[36m" // Cyan
	case LogLevelInfo:
		return "\033[32m" // Green
	case LogLevelWarn:
		return "\033[33m" // Yellow
	case LogLevelError:
		return "\033[31m" // Red
	case LogLevelFatal:
		return "\033[35m" // Magenta
	default:
		return "\033[0m" // Reset
	}
}

// ParseLogLevel converts a config value such as "debug" into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "fatal":
		return LogLevelFatal, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger interface defines the logging contract
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})

	SetLevel(level LogLevel)
	SetOutput(w io.Writer)
	SetFormat(format LogFormat)

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// LogFormat represents the log output format
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
	LogFormatCompact
)

// ParseLogFormat converts a config value such as "json" into a LogFormat
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return LogFormatText, nil
	case "json":
		return LogFormatJSON, nil
	case "compact":
		return LogFormatCompact, nil
	default:
		return LogFormatText, fmt.Errorf("unknown log format %q", s)
	}
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level       LogLevel
	Format      LogFormat
	Output      io.Writer
	EnableFile  bool
	FilePath    string
	EnableColor bool
}

// DefaultLoggerConfig returns a default logger configuration.
// Diagnostics go to stderr so they never mix with exported data.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		Output:      os.Stderr,
		EnableFile:  false,
		EnableColor: true,
	}
}

// CLILogger is the main logger implementation
type CLILogger struct {
	config *LoggerConfig
	logger *log.Logger
	fields map[string]interface{}
	file   *os.File
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config *LoggerConfig) (*CLILogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}

	logger := &CLILogger{
		config: config,
		fields: make(map[string]interface{}),
	}

	if err := logger.setupOutput(); err != nil {
		return nil, fmt.Errorf("failed to setup logger output: %w", err)
	}

	return logger, nil
}

// setupOutput configures the logger output
func (l *CLILogger) setupOutput() error {
	var output io.Writer = l.config.Output

	if l.config.EnableFile && l.config.FilePath != "" {
		dir := filepath.Dir(l.config.FilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		if l.file == nil {
			file, err := os.OpenFile(l.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			l.file = file
		}

		output = io.MultiWriter(l.config.Output, l.file)
	}

	l.logger = log.New(output, "", 0)
	return nil
}

// Debug logs a debug message
func (l *CLILogger) Debug(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelDebug {
		l.log(LogLevelDebug, msg, args...)
	}
}

// Info logs an info message
func (l *CLILogger) Info(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelInfo {
		l.log(LogLevelInfo, msg, args...)
	}
}

// Warn logs a warning message
func (l *CLILogger) Warn(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelWarn {
		l.log(LogLevelWarn, msg, args...)
	}
}

// Error logs an error message
func (l *CLILogger) Error(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelError {
		l.log(LogLevelError, msg, args...)
	}
}

// Fatal logs a fatal message and exits
func (l *CLILogger) Fatal(msg string, args ...interface{}) {
	l.log(LogLevelFatal, msg, args...)
	os.Exit(1)
}

func (l *CLILogger) log(level LogLevel, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.logger.Print(l.createLogEntry(level, msg))
}

// createLogEntry creates a formatted log entry
func (l *CLILogger) createLogEntry(level LogLevel, msg string) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	switch l.config.Format {
	case LogFormatJSON:
		return l.createJSONEntry(level, msg, timestamp)
	case LogFormatCompact:
		return l.createCompactEntry(level, msg, timestamp)
	default:
		return l.createTextEntry(level, msg, timestamp)
	}
}

// sortedFieldKeys keeps field output stable between runs
func (l *CLILogger) sortedFieldKeys() []string {
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (l *CLILogger) createTextEntry(level LogLevel, msg string, timestamp string) string {
	var builder strings.Builder

	if l.config.EnableColor {
		builder.WriteString(level.ColorCode())
	}

	builder.WriteString(fmt.Sprintf("[%s] %s", timestamp, level.String()))

	if len(l.fields) > 0 {
		builder.WriteString(" {")
		for i, k := range l.sortedFieldKeys() {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(fmt.Sprintf("%s=%v", k, l.fields[k]))
		}
		builder.WriteString("}")
	}

	builder.WriteString(fmt.Sprintf(" %s", msg))

	if l.config.EnableColor {
		builder.WriteString("\033[0m")
	}

	return builder.String()
}

func (l *CLILogger) createCompactEntry(level LogLevel, msg string, timestamp string) string {
	levelChar := string(level.String()[0])
	timeShort := timestamp[11:19]

	var builder strings.Builder

	if l.config.EnableColor {
		builder.WriteString(level.ColorCode())
	}

	builder.WriteString(fmt.Sprintf("%s %s %s", levelChar, timeShort, msg))

	if l.config.EnableColor {
		builder.WriteString("\033[0m")
	}

	return builder.String()
}

func (l *CLILogger) createJSONEntry(level LogLevel, msg string, timestamp string) string {
	entry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level.String(),
		"message":   msg,
	}

	for k, v := range l.fields {
		if _, reserved := entry[k]; reserved {
			k = "field." + k
		}
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"level":%q,"message":%q}`, level.String(), msg)
	}
	return string(data)
}

// SetLevel sets the logging level
func (l *CLILogger) SetLevel(level LogLevel) {
	l.config.Level = level
}

// SetOutput sets the output writer
func (l *CLILogger) SetOutput(w io.Writer) {
	l.config.Output = w
	_ = l.setupOutput()
}

// SetFormat sets the log format
func (l *CLILogger) SetFormat(format LogFormat) {
	l.config.Format = format
}

// WithField returns a logger with an additional field
func (l *CLILogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a logger with additional fields
func (l *CLILogger) WithFields(fields map[string]interface{}) Logger {
	newLogger := &CLILogger{
		config: l.config,
		logger: l.logger,
		fields: make(map[string]interface{}, len(l.fields)+len(fields)),
		file:   l.file,
	}

	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	for k, v := range fields {
		newLogger.fields[k] = v
	}

	return newLogger
}

// Close closes the logger and any open files
func (l *CLILogger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Global logger instance
var globalLogger Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(config *LoggerConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// SetGlobalLogger replaces the global logger
func SetGlobalLogger(logger Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalLogger == nil {
		logger, _ := NewLogger(DefaultLoggerConfig())
		globalLogger = logger
	}
	return globalLogger
}

// Convenience functions for global logger
func Debug(msg string, args ...interface{}) {
	GetGlobalLogger().Debug(msg, args...)
}

func Info(msg string, args ...interface{}) {
	GetGlobalLogger().Info(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	GetGlobalLogger().Warn(msg, args...)
}

func Error(msg string, args ...interface{}) {
	GetGlobalLogger().Error(msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	GetGlobalLogger().Fatal(msg, args...)
}
