package core

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// Params is an ordered request parameter mapping. Insertion order is
// preserved because the encoded form feeds the request signature and the
// transport URL, and both must see the identical byte sequence.
//
// Set drops nil values and stringifies everything else, so optional
// parameters can be passed unconditionally: omission-means-exclude.
type Params struct {
	pairs []paramPair
}

type paramPair struct {
	key   string
	value string
}

// NewParams creates an empty ordered parameter mapping.
func NewParams() *Params {
	return &Params{}
}

// Set stores a parameter, replacing the value in place if the key already
// exists. Nil values (untyped nil or nil typed pointers) are skipped
// entirely; all other values are converted to their string form.
func (p *Params) Set(key string, value any) *Params {
	s, ok := stringify(value)
	if !ok {
		return p
	}
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = s
			return p
		}
	}
	p.pairs = append(p.pairs, paramPair{key: key, value: s})
	return p
}

// Get returns the stringified value for key and whether it is present.
func (p *Params) Get(key string) (string, bool) {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value, true
		}
	}
	return "", false
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.pairs))
	for _, kv := range p.pairs {
		keys = append(keys, kv.key)
	}
	return keys
}

// Encode renders the parameters as `key=value` pairs joined by `&`, in
// insertion order. Values are expected to be URL-safe; the exchange's
// parameter vocabulary (markets, symbols, integers, enum words) is.
func (p *Params) Encode() string {
	var b bytes.Buffer
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(kv.value)
	}
	return b.String()
}

// MarshalJSON renders the parameters as a compact JSON object with string
// values, keys in insertion order and no extraneous whitespace. The result
// is byte-stable across repeated calls, which the signature path relies on.
func (p *Params) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := sonic.Marshal(kv.key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		value, err := sonic.Marshal(kv.value)
		if err != nil {
			return nil, err
		}
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case *apd.Decimal:
		if v == nil {
			return "", false
		}
		return v.Text('f'), true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case *bool:
		if v == nil {
			return "", false
		}
		return strconv.FormatBool(*v), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
