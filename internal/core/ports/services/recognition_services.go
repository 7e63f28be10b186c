package services

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/dto"
)

// Label is one ranked prediction from the external classifier.
type Label struct {
	Description string
	Score       float32
}

// LabelDetector is the narrow port over the pretrained image
// classifier: image bytes in, ranked labels out. No inference happens
// in this repository.
type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte, maxResults int) ([]Label, error)
}

// Translator is the narrow port over the external translation service.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// ReconocimientoService classifies an uploaded image and returns its
// labels translated to the configured target language.
type ReconocimientoService interface {
	ReconocerImagen(ctx context.Context, imagen []byte) ([]dto.ObjetoReconocido, error)
}
