package records

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
)

// schema lists the fields of one record shape by the coercion they need.
type schema struct {
	texts  []string
	people []string
	dates  []string
	ints   []string
	bools  []string
	lists  []string
	// split lists accept a bare "a, b; c" string
	split []string
	// elements describes the objects inside list fields
	elements map[string]schema
}

var changeSchema = schema{texts: []string{"name", "calling", "organizationId", "organizationName"}}

var schemas = map[api.Kind]schema{
	api.KindSacramental: {
		texts:  []string{"openingHymn", "sacramentHymn", "intermediateHymn", "closingHymn", "notes"},
		people: []string{"presider", "director", "chorister", "organist", "openingPrayer", "closingPrayer"},
		dates:  []string{"date"},
		ints:   []string{"intermediateAfter"},
		bools:  []string{"isTestimonyMeeting"},
		lists:  []string{"bishopric", "recognition", "announcements", "speakers", "releases", "sustainments", "organizations"},
		split:  []string{"visitingAuthority"},
		elements: map[string]schema{
			"releases":      changeSchema,
			"sustainments":  changeSchema,
			"organizations": {texts: []string{"id", "name"}},
		},
	},
	api.KindCouncil: {
		texts:  []string{"council", "spiritualThought", "discussion", "nextMeeting"},
		people: []string{"presider", "director", "openingPrayer", "closingPrayer"},
		dates:  []string{"date"},
		lists:  []string{"agenda", "assignments"},
		split:  []string{"attendees"},
		elements: map[string]schema{
			"assignments": {texts: []string{"task", "due"}, people: []string{"person"}},
		},
	},
	api.KindAgenda: {
		texts:  []string{"interviewer"},
		dates:  []string{"from", "to"},
		lists:  []string{"interviews"},
		elements: map[string]schema{
			"interviews": {texts: []string{"time", "name", "purpose", "location"}, dates: []string{"date"}},
		},
	},
	api.KindRoster: {
		texts: []string{"organization"},
		dates: []string{"date"},
		lists: []string{"entries"},
		elements: map[string]schema{
			"entries": {texts: []string{"name"}, bools: []string{"present"}},
		},
	},
}

var splitPattern = regexp.MustCompile(`[,;\n]`)

// Coerce returns a copy of raw with every known field in its canonical
// shape. Unknown fields pass through. Values that cannot be coerced are
// dropped or kept raw, never reported as errors.
func Coerce(kind api.Kind, raw Raw) Raw {
	s, ok := schemas[kind]
	if !ok {
		return raw
	}
	return Raw(s.apply(map[string]any(raw), string(kind)))
}

func (s schema) apply(in map[string]any, path string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	coercers := []struct {
		keys []string
		fn   func(key string, v any) (any, bool)
	}{
		{s.texts, func(_ string, v any) (any, bool) { return coerceText(v) }},
		{s.people, func(_ string, v any) (any, bool) { return coercePerson(v) }},
		{s.dates, func(key string, v any) (any, bool) { return coerceDate(v, path+"."+key) }},
		{s.ints, func(key string, v any) (any, bool) { return coerceInt(v, path+"."+key) }},
		{s.bools, func(key string, v any) (any, bool) { return coerceBool(v, path+"."+key) }},
		{s.lists, func(key string, v any) (any, bool) { return s.coerceList(key, v, path, false) }},
		{s.split, func(key string, v any) (any, bool) { return s.coerceList(key, v, path, true) }},
	}
	for _, c := range coercers {
		for _, key := range c.keys {
			v, present := out[key]
			if !present {
				continue
			}
			if coerced, ok := c.fn(key, v); ok {
				out[key] = coerced
			} else {
				delete(out, key)
			}
		}
	}
	return out
}

func coerceText(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		return t, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t), true
	}
	return nil, false
}

func coercePerson(v any) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	return coerceText(v)
}

func coerceDate(v any, path string) (any, bool) {
	s, ok := coerceText(v)
	if !ok {
		return nil, false
	}
	if _, err := api.ParseDate(s.(string)); err != nil {
		log.Warnf("%s: dropping %v", path, err)
		return nil, false
	}
	return s, true
}

func coerceInt(v any, path string) (any, bool) {
	switch t := v.(type) {
	case int, int64, uint64:
		return t, true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
	}
	log.Debugf("%s: ignoring non-integer %v", path, v)
	return nil, false
}

// coerceBool maps "true"/"false" strings to booleans. Any other string is
// dropped, so the field reads as false.
func coerceBool(v any, path string) (any, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	case int:
		return t != 0, true
	case float64:
		return t != 0, true
	}
	log.Debugf("%s: ignoring non-boolean %v", path, v)
	return nil, false
}

// coerceList turns a list field into []any. A JSON encoded string is parsed;
// when parsing fails the string is kept as the only element.
func (s schema) coerceList(key string, v any, path string, split bool) (any, bool) {
	path = path + "." + key
	if str, ok := v.(string); ok {
		str = strings.TrimSpace(str)
		if str == "" {
			return nil, false
		}
		v = str
		if strings.HasPrefix(str, "[") || strings.HasPrefix(str, "{") || strings.HasPrefix(str, `"`) {
			var parsed any
			if err := json.Unmarshal([]byte(str), &parsed); err != nil {
				log.Warnf("%s: keeping malformed JSON list as text: %v", path, err)
			} else {
				v = parsed
			}
		}
	}

	var items []any
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		items = t
	case string:
		if split {
			items = lo.FilterMap(splitPattern.Split(t, -1), func(part string, _ int) (any, bool) {
				part = strings.TrimSpace(part)
				return part, part != ""
			})
		} else {
			items = []any{t}
		}
	default:
		items = []any{t}
	}

	element, nested := s.elements[key]
	out := make([]any, 0, len(items))
	for i, item := range items {
		switch t := item.(type) {
		case nil:
			continue
		case map[string]any:
			if nested {
				out = append(out, element.apply(t, fmt.Sprintf("%s[%d]", path, i)))
			} else {
				out = append(out, t)
			}
		case []any:
			log.Debugf("%s[%d]: ignoring nested list", path, i)
		default:
			if text, ok := coerceText(t); ok && strings.TrimSpace(text.(string)) != "" {
				out = append(out, text)
			}
		}
	}
	return out, true
}
