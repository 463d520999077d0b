package helpers

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	// Reason carries the machine-readable validation flag the booking form
	// renders as a specific message: missing, past, conflict, insert.
	Reason string `json:"reason,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

func FlaggedErrorResponse(err, reason string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
		Reason:  reason,
	}
}
