package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Instrument messages
	FindInstrumentsSuccessMessage = "instruments fetched successfully"
	FindInstrumentSuccessMessage  = "instrument fetched successfully"
	ScoreInstrumentSuccessMessage = "instrument scored successfully"

	// Assessment messages
	CreateAssessmentSuccessMessage  = "assessment berhasil disimpan"
	FindAssessmentsSuccessMessage   = "assessments fetched successfully"
	DeleteAssessmentSuccessMessage  = "assessment berhasil dihapus"
	MigrateAssessmentSuccessMessage = "local assessments migrated successfully"

	// Export / import messages
	ExportDocumentSuccessMessage    = "data berhasil diekspor"
	ImportReplaceSuccessMessage     = "data berhasil diimport"
	ImportMergeSuccessMessage       = "berhasil menambahkan assessment baru"
	ExportSpreadsheetQueuedMessage  = "spreadsheet export queued"
	ExportUploadedSuccessMessage    = "export artifact uploaded successfully"

	// User messages
	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "user deleted successfully"
	FindUsersSuccess   = "users fetched successfully"
)
