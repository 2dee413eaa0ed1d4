// Package lint defines the contract between the evaluation engine and the
// rules it runs.
//
// A rule inspects one parsed Jenkins job document and returns a Result with
// one of three outcomes: Pass, Fail or Skip. Only Fail counts against a job.
// Rules are registered as factories; the engine creates a fresh instance for
// every document it lints and discards it after one evaluation, so rules
// carry no state between documents.
//
// Every rule declares the root element tags it understands. Evaluate applies
// that gate before calling Check, so a rule never sees a document of a kind
// it was not written for.
package lint
