//go:build amd64 || arm64

package fpenv_test

import (
	"testing"

	"github.com/katalvlaran/geompred/internal/fpenv"
)

func TestInit_SucceedsOnSupportedArchitecture(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("fpenv.Init panicked on a supported architecture: %v", r)
		}
	}()
	fpenv.Init()
}
