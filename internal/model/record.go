package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Kind discriminates the record variants sharing the single collection.
type Kind string

// Record kinds.
const (
	KindUser        Kind = "user"
	KindItem        Kind = "item"
	KindSale        Kind = "sale"
	KindService     Kind = "service"
	KindAppointment Kind = "appointment"
)

// Record is one persisted entity. Every variant carries its identifier and
// kind tag in the serialized document so that the whole collection
// round-trips through export/import verbatim.
type Record interface {
	RecordID() string
	RecordKind() Kind
}

// NewID generates a fresh record identifier. Identifiers are unique across
// the entire collection and never reused.
func NewID() string {
	return uuid.NewString()
}

// Decode deserializes a record document of a known kind.
func Decode(kind Kind, data []byte) (Record, error) {
	var rec Record
	switch kind {
	case KindUser:
		rec = &User{}
	case KindItem:
		rec = &Item{}
	case KindSale:
		rec = &Sale{}
	case KindService:
		rec = &Service{}
	case KindAppointment:
		rec = &Appointment{}
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", kind, err)
	}
	return rec, nil
}

// DecodeAny deserializes a record document, dispatching on its kind tag.
func DecodeAny(data []byte) (Record, error) {
	var tag struct {
		ID   string `json:"id"`
		Kind Kind   `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("reading record tag: %w", err)
	}
	if tag.ID == "" {
		return nil, fmt.Errorf("record has no id")
	}
	return Decode(tag.Kind, data)
}

// Encode serializes a record to its stored document form.
func Encode(rec Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", rec.RecordKind(), err)
	}
	return data, nil
}
