// Package api - API types for SMS cost estimation
// These types define the contract for the HTTP endpoints.
package api

import (
	"sms-cost/core/message"
	"sms-cost/core/output"
)

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	// From is the sender phone number
	From string `json:"from"`

	// To lists the recipient phone numbers
	To []string `json:"to"`

	// Body is the message text sent to every recipient
	Body string `json:"body"`

	// Mode controls how unpriced messages affect the total
	Mode EstimationMode `json:"mode,omitempty"`

	// Region is the default region for numbers in national format (optional)
	Region string `json:"region,omitempty"`

	// Country bills every recipient to this ISO2 code (optional)
	Country string `json:"country,omitempty"`
}

// EstimationMode controls strictness
type EstimationMode string

const (
	ModeStrict     EstimationMode = "strict"
	ModePermissive EstimationMode = "permissive"
)

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	*output.EstimationResult

	// InputHash identifies the request content
	InputHash string `json:"input_hash"`
}

// SegmentsRequest is the input to POST /segments
type SegmentsRequest struct {
	Body string `json:"body"`
}

// SegmentsResponse is the output of POST /segments
type SegmentsResponse struct {
	message.Segmentation

	// Capacity is the number of units that fit in one segment of this message
	Capacity int `json:"capacity"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
