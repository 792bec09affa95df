package scrapbook

import (
	"bytes"
	"encoding/json"

	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// Encode renders sb as indented UTF-8 JSON. HTML characters are not escaped.
func Encode(sb *Scrapbook) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a scrapbook document read from source.
func Decode(data []byte, source string) (*Scrapbook, error) {
	var sb Scrapbook
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, apperrors.NewDecodeError(source, err)
	}
	return &sb, nil
}
