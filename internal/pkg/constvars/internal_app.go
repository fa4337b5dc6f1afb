package constvars

import "time"

type ContextKey string

const (
	ResourceInstruments = "instruments"
	ResourceAssessments = "assessments"
	ResourceExports     = "exports"
	ResourceImports     = "imports"
	ResourceUsers       = "users"
)

const (
	MongoCollectionAssessments = "assessments"
	MongoCollectionUsers       = "users"
)

const (
	// RedisKeyLocalAssessments holds the full local record collection as one
	// JSON array, mirroring the single-key device storage it replaces.
	RedisKeyLocalAssessments = "assessments"
)

const (
	// SharedTenantID tags every remote record; all devices share one bucket.
	SharedTenantID = "admin_user_001"
)

const (
	ExportFormatVersion = "1.0"

	ExportDocumentFilenameFormat    = "assessments-backup-%s.json"
	ExportSpreadsheetFilenameFormat = "Assessment_Lansia_%s.xlsx"

	ExportDownloadURLExpiry = 24 * time.Hour
)

const (
	ImportModeReplace = "replace"
	ImportModeMerge   = "merge"
)

const (
	CombinedPolicyPercentage = "percentage"
	CombinedPolicyEither     = "either"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "KMDR_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
