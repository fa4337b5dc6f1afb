package exports

import (
	"fmt"
	"time"

	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// rawExportDocument defers per-record decoding so legacy shapes can be
// validated and normalized element by element.
type rawExportDocument struct {
	Version     string            `json:"version"`
	ExportDate  string            `json:"exportDate"`
	Assessments []json.RawMessage `json:"assessments"`
	Count       int               `json:"count"`
}

// legacy response blocks that count as an instrument result
var legacyResultKeys = []string{"results", "aksScores", "aiksScores", "barthel", "aksScore", "aks_score"}

// parseImportPayload runs the structural validation and returns the
// normalized records. Validation is all-or-nothing: any malformed element
// rejects the whole document before a single record is written.
func parseImportPayload(payload []byte) ([]models.AssessmentRecord, error) {
	var doc rawExportDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, exceptions.ErrInvalidImportDocument(err)
	}
	if doc.Version == "" || doc.Assessments == nil {
		return nil, exceptions.ErrInvalidImportDocument(fmt.Errorf("missing version or assessments array"))
	}

	records := make([]models.AssessmentRecord, 0, len(doc.Assessments))
	for idx, raw := range doc.Assessments {
		if err := validateAssessmentElement(raw); err != nil {
			return nil, exceptions.ErrInvalidImportDocument(fmt.Errorf("assessment %d: %w", idx, err))
		}
		record, err := models.NormalizeAssessment(raw)
		if err != nil {
			return nil, exceptions.ErrInvalidImportDocument(fmt.Errorf("assessment %d: %w", idx, err))
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = record.Timestamp
			record.UpdatedAt = record.Timestamp
		}
		records = append(records, record)
	}
	return records, nil
}

func validateAssessmentElement(raw json.RawMessage) error {
	var element map[string]json.RawMessage
	if err := json.Unmarshal(raw, &element); err != nil {
		return err
	}

	var id string
	if err := json.Unmarshal(element["id"], &id); err != nil || id == "" {
		return fmt.Errorf("missing id")
	}
	if err := validateTimestamp(element); err != nil {
		return err
	}
	if len(element["demographic"]) == 0 {
		return fmt.Errorf("missing demographic block")
	}
	for _, key := range legacyResultKeys {
		if len(element[key]) > 0 && string(element[key]) != "null" {
			return nil
		}
	}
	return fmt.Errorf("no instrument result present")
}

func validateTimestamp(element map[string]json.RawMessage) error {
	raw, ok := element["timestamp"]
	if !ok || len(raw) == 0 {
		return fmt.Errorf("missing timestamp")
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return fmt.Errorf("missing timestamp")
	}
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		return fmt.Errorf("timestamp not RFC3339: %w", err)
	}
	return nil
}
