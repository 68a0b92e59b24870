package serviceutil

import (
	"encoding/json"

	"connectrpc.com/connect"
)

type jsonCodec struct{}

// JSONCodec lets connect handlers and clients exchange plain Go structs as
// application/json instead of generated protobuf messages.
var JSONCodec connect.Codec = jsonCodec{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
