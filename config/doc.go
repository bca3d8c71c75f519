// Package config assembles the run configuration of the salesman CLI.
//
// Values are layered with viper, lowest precedence first:
//
//  1. built-in defaults (Default),
//  2. an optional YAML file (--config),
//  3. environment variables prefixed SALESMAN_ (SALESMAN_ANNEAL_COOLING_RATE=0.95),
//  4. command-line flags (BindFlags),
//  5. the positional node count.
//
// The merged result is checked with go-playground/validator struct tags.
package config
