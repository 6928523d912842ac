package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyType    = errors.New("envelope type is empty")
	ErrNilPayload   = errors.New("payload is nil")
	ErrEmptyMessage = errors.New("message is empty")
)

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, ErrEmptyType
	}
	if payload == nil {
		return nil, ErrNilPayload
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	if e.T == "" {
		return Envelope{}, ErrEmptyType
	}
	return e, nil
}

// DecodePayload unmarshals the envelope payload into T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
