package api

import (
	"fmt"
	"strings"
)

// Kind identifies the document type a record is composed into.
// The value doubles as the filename prefix of the generated document.
type Kind string

const (
	KindSacramental Kind = "sacramental-program"
	KindCouncil     Kind = "council-minutes"
	KindAgenda      Kind = "interview-agenda"
	KindRoster      Kind = "attendance-roster"
)

// Kinds lists every document kind in a stable order.
var Kinds = []Kind{KindSacramental, KindCouncil, KindAgenda, KindRoster}

var kindAliases = map[string]Kind{
	"sacramental":         KindSacramental,
	"sacramental-program": KindSacramental,
	"program":             KindSacramental,
	"council":             KindCouncil,
	"council-minutes":     KindCouncil,
	"minutes":             KindCouncil,
	"agenda":              KindAgenda,
	"interview-agenda":    KindAgenda,
	"interviews":          KindAgenda,
	"roster":              KindRoster,
	"attendance":          KindRoster,
	"attendance-roster":   KindRoster,
}

// ParseKind resolves a kind from its canonical name or a short alias.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

func (k Kind) String() string {
	return string(k)
}

// OrganizationRef names the organization a calling belongs to. It is only used
// to qualify calling phrases ("President of the Relief Society").
type OrganizationRef struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

func (o OrganizationRef) IsEmpty() bool {
	return o.ID == "" && o.Name == ""
}
