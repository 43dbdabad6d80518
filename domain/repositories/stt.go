package repositories

import "context"

// SpeechRecognizer abstracts the remote speech recognition backend
type SpeechRecognizer interface {
	// Recognize submits the audio synchronously and returns the backend's result set
	Recognize(ctx context.Context, req RecognitionRequest) (*RecognitionResult, error)
}

// RecognitionConfig describes how the backend should interpret the audio
type RecognitionConfig struct {
	Encoding                   string   `json:"encoding"`
	SampleRateHertz            int      `json:"sample_rate_hertz"`
	LanguageCode               string   `json:"language_code"`
	AlternativeLanguageCodes   []string `json:"alternative_language_codes"`
	EnableAutomaticPunctuation bool     `json:"enable_automatic_punctuation"`
}

// RecognitionRequest pairs a config with the audio bytes it applies to
type RecognitionRequest struct {
	Config RecognitionConfig
	Audio  []byte
}

// RecognitionResult is the ordered set of result groups returned by the backend
type RecognitionResult struct {
	Groups []ResultGroup `json:"groups"`
}

// Count returns the number of result groups. A nil result has none.
func (r *RecognitionResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Groups)
}

// ResultGroup bundles the ranked alternatives for one recognized utterance
type ResultGroup struct {
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is a single candidate transcript
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float32 `json:"confidence"`
}
