package dictio

import (
	"errors"
	"fmt"

	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrInvalidState = fmt.Errorf("invalid state")
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrValidation   = fmt.Errorf("validation error")
)

// storeErr translates store-level lookup failures into the engine taxonomy
// and passes everything else through.
func storeErr(what string, err error) error {
	if errors.Is(err, gamedb.NotFoundErr) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
