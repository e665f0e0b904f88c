package models

import "encoding/json"

// APIResponse is the uniform JSON envelope returned by every endpoint.
//
// Success responses set Success to true and populate exactly one of the
// payload fields; failure responses carry a client-safe Message and leave
// the payloads empty.
type APIResponse struct {
	Success bool `json:"success"`

	// Message is a human-readable status or error description.
	Message string `json:"message,omitempty"`

	// User is the sanitized account record returned by the auth flows.
	User *User `json:"user,omitempty"`

	// Content is an opaque catalog payload (single item) proxied from the
	// upstream metadata service.
	Content json.RawMessage `json:"content,omitempty"`

	// Results is an opaque catalog payload (list) proxied from the
	// upstream metadata service.
	Results []json.RawMessage `json:"results,omitempty"`
}

// OK builds a bare success envelope with an optional message.
func OK(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// UserResponse builds a success envelope around a sanitized user record.
// The password digest is cleared before embedding.
func UserResponse(user User) APIResponse {
	sanitized := user.Sanitized()
	return APIResponse{Success: true, User: &sanitized}
}

// ErrorResponse builds a failure envelope with the given client-safe message.
func ErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
