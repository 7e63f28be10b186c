package services

import (
	"context"
	"fmt"

	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/dto"
)

// ReconocimientoService forwards an uploaded photo to the pretrained
// label detector and translates the returned labels. No model or
// translation logic lives here; both collaborators sit behind narrow
// ports.
type ReconocimientoService struct {
	detector   portssvc.LabelDetector
	translator portssvc.Translator
	maxLabels  int
	targetLang string
}

func NewReconocimientoService(detector portssvc.LabelDetector, translator portssvc.Translator, maxLabels int, targetLang string) *ReconocimientoService {
	return &ReconocimientoService{
		detector:   detector,
		translator: translator,
		maxLabels:  maxLabels,
		targetLang: targetLang,
	}
}

// ReconocerImagen returns the top labels for the image, translated and
// with their confidence rendered as a percentage ("97.53%").
func (s *ReconocimientoService) ReconocerImagen(ctx context.Context, imagen []byte) ([]dto.ObjetoReconocido, error) {
	labels, err := s.detector.DetectLabels(ctx, imagen, s.maxLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to detect labels: %w", err)
	}

	objetos := make([]dto.ObjetoReconocido, 0, len(labels))
	for _, label := range labels {
		clase, err := s.translator.Translate(ctx, label.Description, "en", s.targetLang)
		if err != nil {
			return nil, fmt.Errorf("failed to translate label %q: %w", label.Description, err)
		}
		objetos = append(objetos, dto.ObjetoReconocido{
			Clase:        clase,
			Probabilidad: fmt.Sprintf("%.2f%%", label.Score*100),
		})
	}
	return objetos, nil
}
