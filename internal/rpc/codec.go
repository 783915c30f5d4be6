package rpc

import "encoding/json"

// jsonCodec is the Connect codec this service speaks over the wire,
// registered under the name "json". There is no protobuf toolchain in this build, so
// unlike the teacher's ProtoJSONCodec (which wraps protojson around
// generated proto.Message types), this codec is a direct encoding/json
// codec over plain Go structs — the same wire shape protojson produces for
// a message with these field names, without requiring generated types.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
