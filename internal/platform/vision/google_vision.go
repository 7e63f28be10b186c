package vision

import (
	"bytes"
	"context"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"google.golang.org/api/option"
)

// GoogleLabelDetector implements the LabelDetector port with the Google
// Cloud Vision API. The model is pretrained and hosted by Google; this
// adapter only forwards bytes and reshapes the response.
type GoogleLabelDetector struct {
	client *vision.ImageAnnotatorClient
}

// NewGoogleLabelDetector creates the detector with credentials from the
// environment: GOOGLE_CREDENTIALS inline JSON first, then
// GOOGLE_APPLICATION_CREDENTIALS file, then application default
// credentials.
func NewGoogleLabelDetector(ctx context.Context) (*GoogleLabelDetector, error) {
	var client *vision.ImageAnnotatorClient
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	return &GoogleLabelDetector{client: client}, nil
}

// Ensure implementation matches interface
var _ portssvc.LabelDetector = (*GoogleLabelDetector)(nil)

// DetectLabels returns up to maxResults ranked labels for the image.
func (d *GoogleLabelDetector) DetectLabels(ctx context.Context, image []byte, maxResults int) ([]portssvc.Label, error) {
	img, err := vision.NewImageFromReader(bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	annotations, err := d.client.DetectLabels(ctx, img, nil, maxResults)
	if err != nil {
		return nil, fmt.Errorf("vision label detection failed: %w", err)
	}

	labels := make([]portssvc.Label, 0, len(annotations))
	for _, a := range annotations {
		labels = append(labels, portssvc.Label{
			Description: a.Description,
			Score:       a.Score,
		})
	}
	return labels, nil
}

// Close closes the underlying Vision client.
func (d *GoogleLabelDetector) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}
