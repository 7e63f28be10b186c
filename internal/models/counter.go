package models

// Counter is a named monotonic sequence stored in the counters
// collection. The only supported operation is atomic
// increment-and-read; values are never reused, even across restarts.
type Counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// Sequence names used by sale creation.
const (
	CounterFacturaNumero = "facturaNumero"
	CounterNumeroInterno = "numeroInterno"
)
