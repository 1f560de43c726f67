// Package diag defines the diagnostic model shared by every compiler phase:
// severities, stable machine codes, the immutable Diagnostic record, and the
// Bag/Reporter plumbing phases use to emit without printing.
package diag
