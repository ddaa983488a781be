package dto

// Envelope wraps the responses of signup, login and cafe creation.
type Envelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewEnvelope(code int, message string, data interface{}) Envelope {
	return Envelope{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	}
}
