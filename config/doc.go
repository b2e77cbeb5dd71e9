// Package config provides the flat, named configuration surface handed to
// selectors at initialization time.
//
// Properties is a string-keyed, string-valued map with typed getters that
// fall back to a caller-supplied default on a missing or malformed value —
// selectors stay total and never fail on configuration lookups.
//
// Keys are dot-joined paths ("shuffle.kicks"); FromYAML flattens nested
// YAML mappings into that shape, so
//
//	shuffle:
//	  kicks: 3
//
// becomes {"shuffle.kicks": "3"}.
package config
