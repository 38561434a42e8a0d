package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PersonSeparator splits the name from the calling in an encoded person entry.
const PersonSeparator = "|"

// PersonEntry is the decomposed form of "Name" or "Name | Calling".
type PersonEntry struct {
	Name    string `json:"name" yaml:"name"`
	Calling string `json:"calling,omitempty" yaml:"calling,omitempty"`
}

// ParsePersonEntry decodes "Name" or "Name | Calling". Only the first
// separator splits, so a calling may itself contain a pipe.
func ParsePersonEntry(s string) PersonEntry {
	name, calling, found := strings.Cut(s, PersonSeparator)
	if !found {
		return PersonEntry{Name: collapse(s)}
	}
	return PersonEntry{Name: collapse(name), Calling: collapse(calling)}
}

// String re-encodes the entry in its wire form.
func (p PersonEntry) String() string {
	if p.Calling == "" {
		return p.Name
	}
	return fmt.Sprintf("%s %s %s", p.Name, PersonSeparator, p.Calling)
}

func (p PersonEntry) IsEmpty() bool {
	return p.Name == ""
}

// UnmarshalJSON accepts either the encoded string or an object with
// name/calling keys.
func (p *PersonEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParsePersonEntry(s)
		return nil
	}
	var obj struct {
		Name    string `json:"name"`
		Calling string `json:"calling"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("person entry must be a string or {name, calling}: %w", err)
	}
	p.Name = collapse(obj.Name)
	p.Calling = collapse(obj.Calling)
	return nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
