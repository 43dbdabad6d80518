package usecase

import (
	"github.com/satriahrh/audioclass/domain"
	"github.com/satriahrh/audioclass/domain/entities"
	"github.com/satriahrh/audioclass/domain/repositories"
)

// Classify turns a backend result set into an outcome. The backend's ranking
// is trusted: the first alternative of the first group wins. An empty result
// set is non-speech.
func Classify(result *repositories.RecognitionResult) (entities.ClassificationOutcome, error) {
	if result == nil || len(result.Groups) == 0 {
		return entities.NonSpeechOutcome(), nil
	}

	first := result.Groups[0]
	if len(first.Alternatives) == 0 {
		return entities.ClassificationOutcome{}, &domain.BackendError{
			Message: "recognition result has no alternatives",
		}
	}

	return entities.SpeechOutcome(first.Alternatives[0].Transcript), nil
}
