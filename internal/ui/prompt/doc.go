// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr so stdout stays clean for script output.
// Both prompts distinguish a deliberate cancel (esc, q) from an
// interrupt (ctrl+c or context cancellation):
//   - [Select]: single selection from a fuzzy-filtered list
//   - [Confirm]: yes/no confirmation
package prompt
