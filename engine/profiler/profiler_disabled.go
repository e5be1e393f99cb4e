//go:build !profile

package profiler

// Enabled reports whether the binary was built with -tags profile.
const Enabled = false

// No-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Start(name string) func() { return noop }

func Dump(path string) error { return nil }

func noop() {}
