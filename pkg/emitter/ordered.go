package emitter

import (
	"bytes"
	"encoding/json"
)

// doc is a small ordered JSON object builder. encoding/json marshals Go
// maps with sorted keys, which scrambles the field order a Vega-Lite spec
// is conventionally written in ($schema, description, data, mark, encoding,
// ...). doc preserves insertion order instead, so Emit's output reads the
// way a human-authored Vega-Lite spec does.
type doc struct {
	keys   []string
	values map[string]any
}

// newDoc creates an empty ordered document.
func newDoc() *doc {
	return &doc{values: make(map[string]any)}
}

// set inserts or overwrites a key. First-time insertion order is preserved;
// overwriting an existing key keeps its original position.
func (d *doc) set(key string, value any) *doc {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// setIf calls set only when cond is true, for optional fields.
func (d *doc) setIf(cond bool, key string, value any) *doc {
	if cond {
		d.set(key, value)
	}
	return d
}

// has reports whether key has been set.
func (d *doc) has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// len reports the number of keys set.
func (d *doc) len() int { return len(d.keys) }

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (d *doc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
