package ports

import (
	"time"

	"github.com/google/uuid"
)

// Clock hora actual; se inyecta para que los casos de uso sean deterministas en tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator genera identificadores de entidades.
type IDGenerator interface {
	NewID() string
}

// SystemClock reloj del sistema en UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator genera UUID v4.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }
