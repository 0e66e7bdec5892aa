// Package api defines the JSON bodies shared by the HTTP handlers.
package api

// MessageResponse carries a human-readable message, for errors and validation failures.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MissingValue builds the validation message for an absent required field.
func MissingValue(field string) MessageResponse {
	return MessageResponse{Msg: "missing " + field + " value"}
}
