package service

import (
	"encoding/base64"
	"fmt"
)

// Message bodies are stored through a reversible base64 step. This is an
// obfuscation placeholder, NOT encryption: it offers no confidentiality
// and exists only so raw text never sits verbatim in table dumps. Real
// end-to-end encryption would replace this transform wholesale.

func EncodeContent(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

func DecodeContent(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("malformed message content: %w", err)
	}
	return string(raw), nil
}
