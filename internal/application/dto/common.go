package dto

// ErrorResponse corps d'erreur JSON de la surface /api.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
