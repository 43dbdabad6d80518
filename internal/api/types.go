package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/satriahrh/audioclass/domain/entities"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	livenessMessage = "Audio Classification API is running"
)

// StatusResponse is returned by the liveness probe
type StatusResponse struct {
	Message string `json:"message"`
}

// ClassificationData is the payload of a successful upload. Exactly one of
// Transcription or Confidence is set, depending on the classification.
type ClassificationData struct {
	Classification string      `json:"classification"`
	Transcription  *string     `json:"transcription,omitempty"`
	Confidence     *Confidence `json:"confidence,omitempty"`
}

// Confidence always renders with a fractional part, so the non-speech
// placeholder goes out as 0.0
type Confidence float64

// MarshalJSON implements json.Marshaler
func (c Confidence) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("unsupported confidence value: %v", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

// SuccessResponse wraps a classification outcome
type SuccessResponse struct {
	Status string             `json:"status"`
	Data   ClassificationData `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewSuccessResponse renders an outcome in the wire format
func NewSuccessResponse(outcome entities.ClassificationOutcome) SuccessResponse {
	data := ClassificationData{Classification: string(outcome.Classification)}
	if outcome.IsSpeech() {
		transcript := outcome.Transcript
		data.Transcription = &transcript
	} else {
		confidence := Confidence(outcome.Confidence)
		data.Confidence = &confidence
	}
	return SuccessResponse{Status: statusSuccess, Data: data}
}

// NewErrorResponse builds the error envelope
func NewErrorResponse(message string) ErrorResponse {
	if message == "" {
		message = "unknown error"
	}
	return ErrorResponse{Status: statusError, Message: message}
}
