package institutional

import (
	"encoding/json"
	"strings"

	"github.com/hnakamura/kabuto/internal/models"
)

// ParseOutcome is the result of decoding LLM output: either a holder list
// (Parsed true) or the raw text that could not be decoded.
type ParseOutcome struct {
	Parsed  bool
	Holders []models.InstitutionalHolder
	Raw     string
}

// ParseHolders decodes holder records from generated text. Stage one
// expects the whole payload to be a JSON array. Stage two scans for an
// embedded array, which handles responses wrapped in markdown fences or
// prose. Rows without a holder name are dropped.
func ParseHolders(text string) ParseOutcome {
	if holders, ok := decodeHolders(text); ok {
		return ParseOutcome{Parsed: true, Holders: holders}
	}

	if fragment, ok := extractArray(text); ok {
		if holders, ok := decodeHolders(fragment); ok {
			return ParseOutcome{Parsed: true, Holders: holders}
		}
	}

	return ParseOutcome{Raw: text}
}

func decodeHolders(text string) ([]models.InstitutionalHolder, bool) {
	var holders []models.InstitutionalHolder
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &holders); err != nil {
		return nil, false
	}

	valid := holders[:0]
	for _, h := range holders {
		if strings.TrimSpace(h.Holder) != "" {
			valid = append(valid, h)
		}
	}
	if len(valid) == 0 {
		return nil, false
	}
	return valid, true
}

// extractArray returns the outermost bracketed span in text.
func extractArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
