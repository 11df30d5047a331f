// Package jsonccst implements a lossless JSONC concrete syntax tree:
// parsing, structural mutation, and a reconciler that drives a parsed
// document toward a target value graph while preserving every comment,
// trailing comma, and whitespace decision in the original source.
//
// The typical entry point is StringifyPreservingComments, which parses an
// original JSONC source, reconciles it against a target value, and renders
// the result, falling back to a deterministic pretty-printer when no
// source is available or the source fails to parse.
package jsonccst
