package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
)

var (
	mu       sync.RWMutex
	instance Logger
)

// New builds a Logger from settings without touching the process logger.
func New(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(settings), nil
	case config.LogTypeFile:
		return NewFileLogger(settings), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}

// InitLogger sets the process logger. Once one is set, later calls are no-ops;
// a failed call leaves it unset so the caller may retry with other settings.
func InitLogger(settings *config.LoggerSettings) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return nil
	}
	log, err := New(settings)
	if err != nil {
		return err
	}
	instance = log
	return nil
}

// GetLogger returns the process logger set by InitLogger.
func GetLogger() (Logger, error) {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return nil, errors.New("logger not initialized: call InitLogger first")
	}
	return instance, nil
}
