package video

// ProcessVideoRequest represents the form fields of a process call
type ProcessVideoRequest struct {
	FileID         string `form:"file_id" json:"file_id" validate:"required"`
	TargetLanguage string `form:"target_language" json:"target_language"`
}
