package transport

// TokenResponse is the success body of POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TaskCreatedResponse is the success body of POST /tasks.
type TaskCreatedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError builds an error response body.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
