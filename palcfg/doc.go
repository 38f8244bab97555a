// Package palcfg provides the ambient configuration layer for the
// label-placement solver: placement-engine version, ejection-chain
// degree bound, display-all toggle, and discriminant-loop toggle,
// constructed either via functional options or loaded from YAML.
package palcfg
