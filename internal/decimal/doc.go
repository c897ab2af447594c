// Package decimal adds arbitrarily large non-negative integers written as
// decimal digit strings.
//
// Operands may carry comma thousands separators ("1,234,567"). When either
// operand is grouped the sum is grouped as well; otherwise the sum is returned
// as a plain digit string.
//
// # Pipeline
//
//   - Normalize strips separators and validates both operands
//   - AddDigits performs schoolbook addition right to left with a carry
//   - Group reinserts separators every three digits from the right
//
// Add composes the three. All functions are pure and safe for concurrent use.
package decimal
