package ports

import "context"

// ToolRunner invokes an external program as a one-shot subprocess.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// LookPath reports the absolute path of an executable, or an error if
	// it is not present on the execution path.
	LookPath(name string) (string, error)

	// Run executes the program and waits for it to finish. A non-zero exit
	// is returned as an error carrying the exit code.
	Run(ctx context.Context, name string, args ...string) error
}
