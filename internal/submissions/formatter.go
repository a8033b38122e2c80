package submissions

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/CryptoCardia/pilotroom-web/internal/notifications"
)

// Payload is the flat key/value record sent to the notification channel.
type Payload map[string]string

// Format copies every submission field into a Payload verbatim. Values are not trimmed,
// validated or coerced.
func Format(s PilotSubmission) Payload {
	out := make(Payload, len(Fields))
	for _, f := range Fields {
		out[string(f)] = s.Get(f)
	}
	return out
}

// PayloadFromJSON keeps exactly the keys of a decoded JSON object. String values are copied
// verbatim, null becomes "" and any other value is kept as its compact JSON text.
func PayloadFromJSON(raw map[string]json.RawMessage) Payload {
	out := make(Payload, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, v); err != nil {
			out[k] = string(v)
			continue
		}
		out[k] = compact.String()
	}
	return out
}

// Entries lists the payload in form order; keys the form does not know follow sorted.
func (p Payload) Entries() []notifications.Field {
	out := make([]notifications.Field, 0, len(p))
	known := make(map[string]bool, len(Fields))
	for _, f := range Fields {
		known[string(f)] = true
		if v, ok := p[string(f)]; ok {
			out = append(out, notifications.Field{Name: string(f), Value: v})
		}
	}

	extra := make([]string, 0, len(p))
	for k := range p {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		out = append(out, notifications.Field{Name: k, Value: p[k]})
	}
	return out
}
