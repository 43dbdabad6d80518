package usecase

import "testing"

func TestBuildRecognitionRequest(t *testing.T) {
	audio := []byte("OggS")
	req := BuildRecognitionRequest(audio, "de-DE")

	if req.Config.Encoding != "OGG_OPUS" {
		t.Errorf("Expected encoding OGG_OPUS, got %s", req.Config.Encoding)
	}
	if req.Config.SampleRateHertz != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", req.Config.SampleRateHertz)
	}
	if req.Config.LanguageCode != "de-DE" {
		t.Errorf("Expected language de-DE, got %s", req.Config.LanguageCode)
	}
	if alts := req.Config.AlternativeLanguageCodes; len(alts) != 1 || alts[0] != "ru-RU" {
		t.Errorf("Expected alternative languages [ru-RU], got %v", alts)
	}
	if !req.Config.EnableAutomaticPunctuation {
		t.Error("Expected automatic punctuation to be enabled")
	}
	if string(req.Audio) != "OggS" {
		t.Errorf("Expected audio to be passed through, got %q", req.Audio)
	}
}

func TestBuildRecognitionRequest_DefaultLanguage(t *testing.T) {
	req := BuildRecognitionRequest(nil, "")

	if req.Config.LanguageCode != "en-US" {
		t.Errorf("Expected default language en-US, got %s", req.Config.LanguageCode)
	}
}

func TestBuildRecognitionRequest_LanguageNotValidated(t *testing.T) {
	req := BuildRecognitionRequest(nil, "not a language")

	if req.Config.LanguageCode != "not a language" {
		t.Errorf("Expected language to be forwarded verbatim, got %s", req.Config.LanguageCode)
	}
}

func TestBuildRecognitionRequest_FreshAlternatives(t *testing.T) {
	first := BuildRecognitionRequest(nil, "en-US")
	first.Config.AlternativeLanguageCodes[0] = "xx-XX"

	second := BuildRecognitionRequest(nil, "en-US")
	if second.Config.AlternativeLanguageCodes[0] != "ru-RU" {
		t.Errorf("Expected an independent alternative list, got %v", second.Config.AlternativeLanguageCodes)
	}
}
