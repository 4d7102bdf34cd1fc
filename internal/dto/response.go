package dto

import "time"

// ApiResponse is the uniform envelope every endpoint returns, success or
// error:
//
//	{ "data": <payload|null>, "status": <http-status-int> }
type ApiResponse struct {
	Data   interface{} `json:"data"`
	Status int         `json:"status"`
}

func Success(data interface{}, status int) ApiResponse {
	return ApiResponse{Data: data, Status: status}
}

// ErrorDetails is the error payload carried in the envelope's data field.
type ErrorDetails struct {
	Error     string                 `json:"error"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Path      string                 `json:"path"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

func Error(code, message, path string, status int) ApiResponse {
	return ApiResponse{
		Data: ErrorDetails{
			Error:     code,
			Message:   message,
			Timestamp: time.Now().UTC(),
			Path:      path,
		},
		Status: status,
	}
}

func ErrorWithDetails(code, message, path string, status int, details map[string]interface{}) ApiResponse {
	resp := Error(code, message, path, status)
	data := resp.Data.(ErrorDetails)
	data.Details = details
	resp.Data = data
	return resp
}
