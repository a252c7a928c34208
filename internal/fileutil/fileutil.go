// Package fileutil decodes uploaded file content and guesses content
// types for the attachment endpoints.
package fileutil

import (
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
)

// Content encodings accepted by the upload endpoints.
const (
	EncodingText   = "text"
	EncodingBase64 = "base64"
)

// Decode turns uploaded content into raw bytes. encoding may be "text"
// (content used verbatim), "base64", or empty, which defaults to text.
func Decode(content, encoding string) ([]byte, error) {
	switch encoding {
	case "", EncodingText:
		return []byte(content), nil
	case EncodingBase64:
		data, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return nil, fmt.Errorf("decode base64 content: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// ContentType guesses a MIME type from the file extension, falling back
// to application/octet-stream.
func ContentType(filename string) string {
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}
