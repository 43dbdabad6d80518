package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/satriahrh/audioclass/domain"
	"github.com/satriahrh/audioclass/domain/repositories"
)

// GoogleSpeechToText implements SpeechRecognizer on top of Google Cloud
// Speech-to-Text v1. One instance owns one client and is shared by every
// in-flight request.
type GoogleSpeechToText struct {
	client *speech.Client
	logger *zap.Logger
}

// Ensure GoogleSpeechToText implements the SpeechRecognizer interface
var _ repositories.SpeechRecognizer = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText dials the speech backend. Credentials and endpoint
// overrides are passed through opts.
func NewGoogleSpeechToText(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client: client,
		logger: logger,
	}, nil
}

// Recognize implements repositories.SpeechRecognizer. The request is sent
// once; the client's retry policy is switched off.
func (g *GoogleSpeechToText) Recognize(ctx context.Context, req repositories.RecognitionRequest) (*repositories.RecognitionResult, error) {
	encoding, err := getAudioEncoding(req.Config.Encoding)
	if err != nil {
		return nil, &domain.BackendError{
			Code:    codes.InvalidArgument.String(),
			Message: err.Error(),
			Err:     err,
		}
	}

	g.logger.Debug("Sending recognize request",
		zap.Int("audioSize", len(req.Audio)),
		zap.String("encoding", req.Config.Encoding),
		zap.Int("sampleRate", req.Config.SampleRateHertz),
		zap.String("language", req.Config.LanguageCode),
		zap.Strings("alternativeLanguages", req.Config.AlternativeLanguageCodes))

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            int32(req.Config.SampleRateHertz),
			LanguageCode:               req.Config.LanguageCode,
			AlternativeLanguageCodes:   req.Config.AlternativeLanguageCodes,
			EnableAutomaticPunctuation: req.Config.EnableAutomaticPunctuation,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: req.Audio},
		},
	}, gax.WithRetry(nil))
	if err != nil {
		backendErr := toBackendError(err)
		g.logger.Warn("Recognize request failed",
			zap.String("code", backendErr.Code),
			zap.String("message", backendErr.Message))
		return nil, backendErr
	}

	result := &repositories.RecognitionResult{
		Groups: make([]repositories.ResultGroup, 0, len(resp.GetResults())),
	}
	for _, r := range resp.GetResults() {
		group := repositories.ResultGroup{
			Alternatives: make([]repositories.Alternative, 0, len(r.GetAlternatives())),
		}
		for _, alt := range r.GetAlternatives() {
			group.Alternatives = append(group.Alternatives, repositories.Alternative{
				Transcript: alt.GetTranscript(),
				Confidence: alt.GetConfidence(),
			})
		}
		result.Groups = append(result.Groups, group)
	}

	g.logger.Info("Recognize response received",
		zap.Int("results", len(result.Groups)),
		zap.Duration("billedTime", resp.GetTotalBilledTime().AsDuration()))

	return result, nil
}

// Close releases the underlying connection
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

// toBackendError keeps the backend's own message so it can be shown to callers
func toBackendError(err error) *domain.BackendError {
	st := status.Convert(err)
	msg := st.Message()
	if msg == "" {
		msg = err.Error()
	}
	return &domain.BackendError{
		Code:    st.Code().String(),
		Message: msg,
		Err:     err,
	}
}

// getAudioEncoding maps the encoding names this service sends to the Speech
// API enum. Clips are stored without transcoding, so only Ogg/Opus is sent.
func getAudioEncoding(encoding string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	if encoding != "OGG_OPUS" {
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported encoding: %s", encoding)
	}
	return speechpb.RecognitionConfig_OGG_OPUS, nil
}
