package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeDelta reads one delta document from r. Unknown keys, trailing data
// and non-object documents are rejected with ErrInvalidDelta.
func DecodeDelta(r io.Reader) (Delta, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return Delta{}, fmt.Errorf("%w: %w", ErrInvalidDelta, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Delta{}, fmt.Errorf("%w: trailing data after document", ErrInvalidDelta)
	}
	if len(raw) == 0 || raw[0] != '{' {
		return Delta{}, fmt.Errorf("%w: document must be an object", ErrInvalidDelta)
	}

	strict := json.NewDecoder(bytes.NewReader(raw))
	strict.DisallowUnknownFields()
	var d Delta
	if err := strict.Decode(&d); err != nil {
		return Delta{}, fmt.Errorf("%w: %w", ErrInvalidDelta, err)
	}
	return d, nil
}
