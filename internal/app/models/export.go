package models

import "time"

// ExportDocument is the portable backup format. The same shape is accepted
// back on import, so a round trip through export and import is lossless.
// SpreadsheetJob is one queued request to render the spreadsheet recap and
// park it in object storage.
type SpreadsheetJob struct {
	JobID      string    `json:"job_id"`
	TenantID   string    `json:"tenant_id"`
	ObjectName string    `json:"object_name"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

type ExportDocument struct {
	Version     string             `json:"version"`
	ExportDate  time.Time          `json:"exportDate"`
	Assessments []AssessmentRecord `json:"assessments"`
	Count       int                `json:"count"`
}
