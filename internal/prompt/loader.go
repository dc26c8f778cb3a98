package prompt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/pkg/logger_i"
)

// LoadError reports a template file that exists but could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading prompt %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var (
	once    sync.Once
	current atomic.Pointer[string]
	initErr error
)

// LoadTemplate reads the instruction template at path, trimmed of surrounding
// whitespace. A missing file yields config.DefaultPrompt.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultPrompt, nil
	}
	if err != nil {
		return "", &LoadError{Path: path, Err: err}
	}
	return strings.TrimSpace(string(data)), nil
}

// Init loads the process template. Only the first call reads the file, later
// calls return the first outcome even if the file changed in between.
func Init(path string) error {
	once.Do(func() {
		logger := logger_i.NewLogger("prompt")
		var template string
		template, initErr = LoadTemplate(path)
		if initErr != nil {
			logger.Error("Failed to load prompt template", "path", path, "error", initErr)
			return
		}
		current.Store(&template)
		logger.Debug("Prompt template loaded", "path", path, "length", len(template))
	})
	return initErr
}

// Template returns the template held by Init, or the default one when Init
// has not loaded anything. Safe to call while Init runs.
func Template() string {
	if t := current.Load(); t != nil {
		return *t
	}
	return config.DefaultPrompt
}
