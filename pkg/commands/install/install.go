package install

import (
	"context"

	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/linker"
)

// InstallPackages links the selected packages into the home directory.
// Nothing is linked if any package is missing or broken.
func InstallPackages(ctx context.Context, env *commands.Environment, opts commands.OperationOptions) (*commands.OperationResult, error) {
	return commands.RunOperation(ctx, env, linker.ActionInstall, opts)
}
