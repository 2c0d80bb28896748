package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rigledger/haul-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport resolves a formatter by name (or alias) and writes the
// snapshot to a timestamped file with a matching extension.
func GenerateReport(snapshot *domain.AnalysisSnapshot, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	return WriteFormatted(f, snapshot, ext)
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
