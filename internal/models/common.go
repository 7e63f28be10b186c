package models

// Estado is the two-state lifecycle of voidable documents.
// Documents are never deleted; annulment flips this field and, for
// purchases and sales, reverses their stock effects.
type Estado string

const (
	EstadoActivo  Estado = "activo"
	EstadoAnulado Estado = "anulado"
)
