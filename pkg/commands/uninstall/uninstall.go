package uninstall

import (
	"context"

	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/linker"
)

// UninstallPackages removes the links of the selected packages. Broken
// packages are uninstalled too.
func UninstallPackages(ctx context.Context, env *commands.Environment, opts commands.OperationOptions) (*commands.OperationResult, error) {
	return commands.RunOperation(ctx, env, linker.ActionUninstall, opts)
}
