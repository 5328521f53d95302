// Package writers holds helpers shared by everything that writes to stdout.
// A reader that closes early (`bowling ... | head -1`) is not an error.
package writers
