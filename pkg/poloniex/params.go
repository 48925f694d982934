package poloniex

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value interface{}
}

// Params is an ordered parameter set. The encoded form keeps insertion
// order, which matters because private requests are signed over it.
type Params []Param

// Set replaces the value of key in place or appends it.
func (p Params) Set(key string, value interface{}) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Get returns the value stored for key.
func (p Params) Get(key string) (interface{}, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Encode returns the form encoded parameters ("a=1&b=2") in order.
func (p Params) Encode() (string, error) {
	var sb strings.Builder
	for i, kv := range p {
		v, err := formatValue(kv.Value)
		if err != nil {
			return "", fmt.Errorf("poloniex: couldn't encode %s: %w", kv.Key, err)
		}
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v))
	}
	return sb.String(), nil
}

// ParseParams builds a parameter set from "key=value" arguments.
func ParseParams(args []string) (Params, error) {
	var p Params
	for _, arg := range args {
		split := strings.SplitN(arg, "=", 2)
		if len(split) != 2 || split[0] == "" {
			return nil, fmt.Errorf("poloniex: invalid parameter %q, expected key=value", arg)
		}
		p = p.Set(split[0], split[1])
	}
	return p, nil
}

// without returns a copy of p skipping the given keys.
func (p Params) without(keys ...string) Params {
	out := make(Params, 0, len(p)+2)
	for _, kv := range p {
		skip := false
		for _, k := range keys {
			if kv.Key == k {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, kv)
		}
	}
	return out
}

func formatValue(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case decimal.Decimal:
		return v.String(), nil
	case time.Time:
		if v.IsZero() {
			return "", errors.New("zero time")
		}
		return strconv.FormatInt(v.Unix(), 10), nil
	case time.Duration:
		return strconv.FormatInt(int64(v/time.Second), 10), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}
