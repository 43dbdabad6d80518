package entities

// Classification is the category assigned to an uploaded clip
type Classification string

const (
	ClassificationSpeech    Classification = "speech"
	ClassificationNonSpeech Classification = "non-speech"
)

// DefaultLanguageCode is used when the caller does not supply one
const DefaultLanguageCode = "en-US"

// UploadedClip is the content of one upload request. It only lives for the
// duration of that request.
type UploadedClip struct {
	Filename     string
	Content      []byte
	LanguageCode string
}

// ClassificationOutcome is the single result produced per accepted upload.
// Transcript is set for speech, Confidence for non-speech.
type ClassificationOutcome struct {
	Classification Classification
	Transcript     string
	Confidence     float64
}

// SpeechOutcome builds a speech outcome carrying the recognized transcript
func SpeechOutcome(transcript string) ClassificationOutcome {
	return ClassificationOutcome{
		Classification: ClassificationSpeech,
		Transcript:     transcript,
	}
}

// NonSpeechOutcome builds a non-speech outcome. The confidence is a fixed
// placeholder; no non-speech model exists.
func NonSpeechOutcome() ClassificationOutcome {
	return ClassificationOutcome{
		Classification: ClassificationNonSpeech,
		Confidence:     0.0,
	}
}

// IsSpeech reports whether the outcome carries a transcript
func (o ClassificationOutcome) IsSpeech() bool {
	return o.Classification == ClassificationSpeech
}
