// Package testutil provides fluent helpers for constructing domain values in
// tests across packages.
package testutil
