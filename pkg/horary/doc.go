// Package horary defines the domain types for horary chart evaluation: the
// chart itself, the aspect timeline it carries, and the symbolic vocabulary
// (path types, aspect statuses, blocker kinds, modulator names) the verdict
// engine operates on.
//
// A Chart is a snapshot of pre-computed symbolic relationships. This package
// does not derive astronomical facts (dignities, receptions, retrograde
// status, aspect timing); charts arrive with those facts already populated
// and the engine in pkg/horary/engine decides what they add up to.
package horary
