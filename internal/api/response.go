// Package api defines the shared response types for the HTTP API.
package api

// Response is the uniform envelope returned by every endpoint.
// Business failures carry success=false and a human-readable message;
// no handler lets an error escape past this envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserData is the public projection of a user record returned by the
// user data endpoint. Credential and OTP state is never exposed.
type UserData struct {
	Name              string `json:"name"`
	IsAccountVerified bool   `json:"isAccountVerified"`
}

// UserDataResponse wraps UserData in the uniform envelope.
type UserDataResponse struct {
	Success  bool     `json:"success"`
	UserData UserData `json:"userData"`
}

// OK returns a success envelope with an optional message.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Error returns a failure envelope with the given message.
func Error(message string) Response {
	return Response{Success: false, Message: message}
}
