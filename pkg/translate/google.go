package translate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	translatev2 "google.golang.org/api/translate/v2"
)

const providerGoogle = "google"

// GoogleConfig holds configuration for the Google Cloud Translation provider.
type GoogleConfig struct {
	// APIKey authenticates requests. Ignored when AccessToken is set.
	APIKey string

	// AccessToken is an OAuth2 access token used instead of the API key.
	AccessToken string

	// Timeout bounds each translation request.
	Timeout time.Duration

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Google translates text via the Google Cloud Translation v2 API.
type Google struct {
	svc     *translatev2.Service
	timeout time.Duration
	logger  *slog.Logger
}

// NewGoogle creates a Google translator. One of APIKey or AccessToken is
// required.
func NewGoogle(ctx context.Context, cfg GoogleConfig) (*Google, error) {
	var auth option.ClientOption
	switch {
	case cfg.AccessToken != "":
		auth = option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}))
	case cfg.APIKey != "":
		auth = option.WithAPIKey(cfg.APIKey)
	default:
		return nil, ErrNoCredentials
	}

	svc, err := translatev2.NewService(ctx, auth)
	if err != nil {
		return nil, WrapError(providerGoogle, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Google{
		svc:     svc,
		timeout: timeout,
		logger:  logger.With("component", "translate.google"),
	}, nil
}

// Translate converts text from sourceLang to targetLang.
func (g *Google) Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error) {
	if text == "" {
		return Translation{}, ErrEmptyText
	}
	if !Supported(sourceLang) || !Supported(targetLang) {
		return Translation{}, ErrUnsupportedLanguage
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()

	resp, err := g.svc.Translations.List([]string{text}, targetLang).
		Source(sourceLang).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return Translation{}, g.mapError(err)
	}

	if len(resp.Translations) == 0 || resp.Translations[0] == nil {
		return Translation{}, WrapError(providerGoogle, ErrNoTranslation)
	}

	g.logger.Debug("translated text",
		"source", sourceLang,
		"target", targetLang,
		"chars", len(text),
		"latency_ms", time.Since(start).Milliseconds())

	return Translation{
		SourceText:     text,
		TranslatedText: resp.Translations[0].TranslatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}, nil
}

// Close releases provider resources. The generated client holds none.
func (g *Google) Close() error {
	return nil
}

// mapError converts googleapi errors to the package taxonomy.
func (g *Google) mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{
			StatusCode: gerr.Code,
			Message:    gerr.Message,
			Provider:   providerGoogle,
		}
	}
	return WrapError(providerGoogle, err)
}
