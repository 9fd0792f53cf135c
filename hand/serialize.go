package hand

import (
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Documents are written flat, without the {"ohh": ...} envelope some writers
// emit. ParseHand accepts both forms.

type wrappedDocument struct {
	OHH *HandHistory `json:"ohh"`
}

// ToJSON serializes the hand as an indented OHH document.
func ToJSON(h *HandHistory) ([]byte, error) {
	return jsoniter.MarshalIndent(h, "", "  ")
}

// ParseHand deserializes an OHH document, unwrapping the optional "ohh"
// envelope when present.
func ParseHand(data []byte) (*HandHistory, error) {
	var wrapped wrappedDocument
	if err := jsoniter.Unmarshal(data, &wrapped); err == nil && wrapped.OHH != nil {
		return wrapped.OHH, nil
	}

	var hand HandHistory
	if err := jsoniter.Unmarshal(data, &hand); err != nil {
		return nil, errors.Wrap(err, "Unable to parse hand history document")
	}
	return &hand, nil
}

// SaveHandFile writes the hand to a file as an OHH JSON document.
func SaveHandFile(h *HandHistory, filename string) error {
	data, err := ToJSON(h)
	if err != nil {
		return errors.Wrap(err, "Unable to serialize hand history")
	}
	err = ioutil.WriteFile(filename, data, 0644)
	if err != nil {
		return errors.Wrapf(err, "Unable to write hand history file [%s]", filename)
	}
	return nil
}

// ReadHandFile loads a hand history document from a file.
func ReadHandFile(filename string) (*HandHistory, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read hand history file [%s]", filename)
	}
	return ParseHand(data)
}
