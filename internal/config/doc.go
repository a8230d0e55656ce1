// Package config manages user-level settings stored at
// ~/.galogen/config.yaml. It provides functions to load, read, and
// write configuration keys such as the default API, profile, and
// generator used when the corresponding flags are omitted.
package config
