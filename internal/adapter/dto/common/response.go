package common

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Code    string            `json:"code" example:"VIDEO_NOT_FOUND"`
	Message string            `json:"message" example:"Video file not found"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Video subtitle service is running"`
}
