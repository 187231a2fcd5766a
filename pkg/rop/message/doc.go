// Package message turns failure reasons into human readable strings.
//
// A Registry maps an origin identifier (usually a package or subsystem name)
// to a Formatter. Reasons without an origin, or with an origin nobody
// registered, go through Generic.
package message
