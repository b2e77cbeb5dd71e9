package config

import (
	"strconv"
	"time"
)

// Properties is a flat set of named configuration options.
// The zero value (nil) is usable; every getter then returns its default.
type Properties map[string]string

// GetString returns the value for key, or def when the key is absent.
func (p Properties) GetString(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}

	return v
}

// GetInt returns the value for key parsed as int, or def when the key is
// absent or not an integer.
func (p Properties) GetInt(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

// GetInt64 returns the value for key parsed as int64, or def when the key
// is absent or not an integer.
func (p Properties) GetInt64(key string, def int64) int64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}

	return n
}

// GetFloat returns the value for key parsed as float64, or def when the
// key is absent or not a number.
func (p Properties) GetFloat(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}

	return f
}

// GetBool returns the value for key parsed as bool ("true"/"false"/"1"/"0"…),
// or def when the key is absent or not a boolean.
func (p Properties) GetBool(key string, def bool) bool {
	v, ok := p[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}

// GetDuration returns the value for key parsed as a time.Duration
// ("250ms", "1m30s"…), or def when the key is absent or malformed.
func (p Properties) GetDuration(key string, def time.Duration) time.Duration {
	v, ok := p[key]
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}

// Clone returns an independent copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Merge returns a new Properties with q's entries layered over p's.
func (p Properties) Merge(q Properties) Properties {
	out := p.Clone()
	for k, v := range q {
		out[k] = v
	}

	return out
}
