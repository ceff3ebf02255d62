// Package syntax provides types for identifiers and other string formats.
//
// These are primarily simple string alias types for parsing or verifying protocol-level syntax of identifiers, not routines for things like resolution or verification against application policies.
package syntax
