package pipeline

import "github.com/horizon-nth/vault/internal/b64"

func encode(data []byte) string       { return b64.Encode(data) }
func decode(s string) ([]byte, error) { return b64.Decode(s) }
