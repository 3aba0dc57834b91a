// Package deploy is the hook for publishing a generated site. Only the
// disabled implementation exists.
package deploy

import (
	"context"
	"errors"

	"sitegen_server/internal/types"
)

// ErrDisabled is returned by Disabled for every call.
var ErrDisabled = errors.New("deployment is disabled")

// Deployer publishes generated files and returns where they ended up.
type Deployer interface {
	Deploy(ctx context.Context, files types.GeneratedFiles) (string, error)
}

// Disabled refuses every deployment.
type Disabled struct{}

func (Disabled) Deploy(context.Context, types.GeneratedFiles) (string, error) {
	return "", ErrDisabled
}
