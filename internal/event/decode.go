package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoPayload is returned when an event carries no payload to decode
var ErrNoPayload = errors.New("event has no payload")

// DecodePayload returns an event payload as T. Events from the in-process bus
// already hold T or *T; raw JSON and generic maps are decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	var data []byte
	switch v := input.(type) {
	case nil:
		return out, ErrNoPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, ErrNoPayload
		}
		return *v, nil
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("encode %T payload: %w", input, err)
		}
		data = encoded
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode payload as %T: %w", out, err)
	}
	return out, nil
}
