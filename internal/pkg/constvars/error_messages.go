package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientServerLongRespond             = "server takes too long to respond"

	ErrClientDemographicIncomplete  = "nama dan usia wajib diisi"
	ErrClientInstrumentIncomplete   = "seluruh item instrumen wajib diisi sebelum menyimpan"
	ErrClientUnknownInstrument      = "instrument is not registered"
	ErrClientAssessmentNotFound     = "assessment not found"
	ErrClientInvalidImportDocument  = "format data tidak valid, pastikan file yang diimport adalah file export yang benar"
	ErrClientNothingToExport        = "tidak ada data assessment untuk diekspor"
	ErrClientUsernameAlreadyExists  = "username already used"
	ErrClientUserNotFound           = "user not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Failed to parse JSON"
	ErrDevCannotMarshalJSON          = "Failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "URL param validation failed for: %s"
	ErrDevInvalidImportDocument      = "Import document failed structural validation"
	ErrDevNothingToExport            = "No assessment records available to export"
	ErrDevUnknownInstrument          = "Instrument definition not found in registry: %s"
	ErrDevIncompleteResponses        = "Instrument responses incomplete: %s"
	ErrDevAssessmentNotFound         = "Assessment record not found: %s"
	ErrDevUserNotFound               = "User not found"
	ErrDevUsernameAlreadyExists      = "Username already exists"
	ErrDevFailedToHashPassword       = "Failed to hash the password"

	ErrDevDBFailedToFindDocument     = "DB Failed to find document"
	ErrDevDBFailedToInsertDocument   = "DB Failed to insert document"
	ErrDevDBFailedToDeleteDocument   = "DB Failed to delete document"
	ErrDevDBFailedToIterateDocuments = "DB Failed to iterate documents"

	ErrDevRedisFailedToSetData    = "Redis Failed to set data"
	ErrDevRedisFailedToGetData    = "Redis Failed to get data with key: %s"
	ErrDevRedisFailedToDeleteData = "Redis Failed to delete data"

	ErrDevMinioFailedToCreateObject = "Minio failed to create object in bucket: %s"

	ErrDevQueueFailedToPublish = "Queue failed to publish message"
	ErrDevQueueFailedToConsume = "Queue failed to start consuming"

	ErrDevSpreadsheetBuildFailed = "Failed to build spreadsheet artifact"
)
