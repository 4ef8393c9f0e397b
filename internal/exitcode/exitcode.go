// Package exitcode contains the well-defined exit codes the shamir command
// can return.
package exitcode

const (
	// Usage - usage error like wrong cli syntax or an unknown command.
	Usage = 1
	// 2 is reserved because it is used by Go panic

	// Input means stdin could not be read or held malformed share text.
	Input = 2 + iota
	// Split means the secret could not be split (bad share count or threshold, entropy failure).
	Split
	// Recover means the shares could not be combined.
	Recover
	// Output means writing shares or the secret to stdout failed.
	Output
)
