package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultSystemPath is where the serve command looks for the system text
// when the config does not override it.
const DefaultSystemPath = "prompts/strike_for_cause_system.txt"

// ErrEmptySystemText indicates the loaded system prompt has no content.
var ErrEmptySystemText = errors.New("system prompt text is empty")

// LoadSystemText reads the static system prompt from disk. Call it once
// at startup and inject the result; the assembler never touches the
// filesystem afterwards.
func LoadSystemText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read system prompt %s: %w", path, err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptySystemText)
	}
	return text, nil
}
