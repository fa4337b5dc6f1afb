package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingRequestKey         = "request"
	LoggingRecordIDKey        = "record_id"
	LoggingInstrumentKey      = "instrument"
	LoggingRecordCountKey     = "record_count"
	LoggingInsertedCountKey   = "inserted_count"
	LoggingImportModeKey      = "import_mode"
	LoggingObjectNameKey      = "object_name"
	LoggingJobIDKey           = "job_id"
	LoggingTenantIDKey        = "tenant_id"
)
