// Package errors defines the structured errors surfaced by the hew CLI
// and its supporting services. The element engine itself deliberately
// defines no error kinds; host and hook failures propagate to callers
// unmodified.
package errors
