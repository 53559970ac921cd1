package main

import "runtime/debug"

// version is stamped by release builds:
// -ldflags "-X main.version=v1.2.0"
var version = ""

// getVersion resolves the version to report: the ldflags stamp when present,
// the module version recorded by `go install ...@version` otherwise, and
// "dev" for plain source builds.
func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}
