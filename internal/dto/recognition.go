package dto

// ObjetoReconocido is one ranked, translated label returned by the
// image recognizer. Probabilidad is rendered as "97.53%".
type ObjetoReconocido struct {
	Clase        string `json:"clase"`
	Probabilidad string `json:"probabilidad"`
}

// ReconocerImagenResponse wraps the ranked labels for an image.
type ReconocerImagenResponse struct {
	ObjetosReconocidos []ObjetoReconocido `json:"objetos_reconocidos"`
}
