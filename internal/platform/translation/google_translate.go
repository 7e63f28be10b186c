package translation

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/translate"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator implements the Translator port with the Google Cloud
// Translation API.
type GoogleTranslator struct {
	client *translate.Client
}

// NewGoogleTranslator creates the translator with the same credential
// resolution order as the vision adapter.
func NewGoogleTranslator(ctx context.Context) (*GoogleTranslator, error) {
	var client *translate.Client
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = translate.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = translate.NewClient(ctx, option.WithCredentialsFile(credFile))
	} else {
		client, err = translate.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleTranslator{client: client}, nil
}

// Ensure implementation matches interface
var _ portssvc.Translator = (*GoogleTranslator)(nil)

// Translate translates text between the given BCP 47 language codes.
func (t *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	source, err := language.Parse(sourceLang)
	if err != nil {
		return "", fmt.Errorf("invalid source language %q: %w", sourceLang, err)
	}
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", targetLang, err)
	}

	translations, err := t.client.Translate(ctx, []string{text}, target, &translate.Options{
		Source: source,
		Format: translate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("translation returned no result for %q", text)
	}
	return translations[0].Text, nil
}

// Close closes the underlying Translate client.
func (t *GoogleTranslator) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
