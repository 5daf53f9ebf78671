package docker

import (
	"fmt"

	"github.com/google/uuid"
)

// NameSentinel requests a fresh random name:tag pair at build time.
const NameSentinel = "random"

// RandomName returns a fresh name:tag pair like "imc-3fa85f64:9b2c1ad4".
// Name and tag are independently random. Practically unique for casual
// local use; not cryptographic identity.
func RandomName() string {
	return fmt.Sprintf("imc-%s:%s", uuid.NewString()[:8], uuid.NewString()[:8])
}
