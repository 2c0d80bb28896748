package output

import (
	"encoding/json"

	"github.com/rigledger/haul-calculator/internal/domain"
)

// JSONFormatter serializes the analysis snapshot as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(snapshot *domain.AnalysisSnapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}
