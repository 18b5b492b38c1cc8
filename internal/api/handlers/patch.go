package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/paddynes2/stride-process-app/internal/api/types"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

// applyField copies one whitelisted patch field into dst when the body
// carried it. A JSON null reaching a pointer target clears the column;
// an absent key leaves dst alone.
func applyField[T any](p types.Patch, field string, dst *T, applied *int) error {
	raw, ok := p[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return appErr.New(appErr.CodeValidation, fmt.Sprintf("invalid value for %s", field))
	}
	*applied++
	return nil
}

// firstErr returns the first non-nil error from a whitelist pass.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
