//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin mockgen, invoked through
// the go:generate directives, in go.mod so that `go generate` works on a
// fresh checkout.
package alumni_chat

import (
	_ "go.uber.org/mock/mockgen"
)
