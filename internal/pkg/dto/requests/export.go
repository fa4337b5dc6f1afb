package requests

type ImportAssessments struct {
	Mode string `json:"mode" validate:"required,import_mode"`
}
