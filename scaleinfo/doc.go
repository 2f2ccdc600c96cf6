// Package scaleinfo models the portable type information that accompanies
// newer metadata generations: a flat table of resolved type descriptors
// addressed by integer id.
//
// The table arrives fully populated; this package performs no interning or
// de-duplication. Descriptor nodes never hold pointers to one another —
// every cross-reference is a TypeID resolved through the Registry, so
// walking a type tree always goes back through the table.
package scaleinfo
