package usecase

import (
	"github.com/satriahrh/audioclass/domain/entities"
	"github.com/satriahrh/audioclass/domain/repositories"
)

// Stored clips are not transcoded, so uploads must already be Ogg/Opus at
// 48 kHz. Anything else is forwarded as is and usually comes back as an empty
// result set, which reads as non-speech.
const (
	RecognitionEncoding   = "OGG_OPUS"
	RecognitionSampleRate = 48000
)

// AlternativeLanguageCodes returns the fixed fallback languages
func AlternativeLanguageCodes() []string {
	return []string{"ru-RU"}
}

// BuildRecognitionRequest pairs the stored audio with the fixed recognition
// settings. The language code is forwarded without validation.
func BuildRecognitionRequest(audio []byte, languageCode string) repositories.RecognitionRequest {
	if languageCode == "" {
		languageCode = entities.DefaultLanguageCode
	}

	return repositories.RecognitionRequest{
		Config: repositories.RecognitionConfig{
			Encoding:                   RecognitionEncoding,
			SampleRateHertz:            RecognitionSampleRate,
			LanguageCode:               languageCode,
			AlternativeLanguageCodes:   AlternativeLanguageCodes(),
			EnableAutomaticPunctuation: true,
		},
		Audio: audio,
	}
}
