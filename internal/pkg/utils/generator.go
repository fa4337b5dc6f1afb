package utils

import (
	"fmt"
	"kemandirian-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateRecordID() string {
	return uuid.NewString()
}

func GenerateExportDocumentFilename(now time.Time) string {
	return fmt.Sprintf(constvars.ExportDocumentFilenameFormat, now.Format("2006-01-02"))
}

func GenerateExportSpreadsheetFilename(now time.Time) string {
	return fmt.Sprintf(constvars.ExportSpreadsheetFilenameFormat, now.Format("2006-01-02"))
}
