// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// The helpers coerce loosely typed values, as produced by JSON or YAML decoding
// into `any`, to the concrete shapes the configuration store expects.
package conv
