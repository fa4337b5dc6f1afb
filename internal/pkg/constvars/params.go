package constvars

const (
	URLParamInstrumentID = "instrument_id"
	URLParamAssessmentID = "assessment_id"
	URLParamUserID       = "user_id"
)

const (
	URLQueryParamVersion      = "version"
	URLQueryParamNama         = "nama"
	URLQueryParamTier         = "tier"
	URLQueryParamPJP          = "pjp"
	URLQueryParamCurrentMonth = "current_month"
	URLQueryParamMode         = "mode"
)
