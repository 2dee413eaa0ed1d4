// Package registry provides a generic, type-safe registry that keeps
// items in the order they were registered. The lint engine uses it to hold
// rule factories so that rules always run, and report, in declaration order.
package registry
