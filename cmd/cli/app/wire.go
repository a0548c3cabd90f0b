//go:build wireinject
// +build wireinject

package app

import (
	"chartmenu/internal/adapters/artifact_hub"
	"chartmenu/internal/adapters/command_runner"
	"chartmenu/internal/adapters/container_orchestrator"
	"chartmenu/internal/adapters/filesystem"
	"chartmenu/internal/adapters/keyring"
	"chartmenu/internal/adapters/terminal"
	"chartmenu/internal/core"
	"chartmenu/internal/core/handler"
	"chartmenu/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	container_orchestrator.ProvideHelmClient,
	wire.Bind(new(ports.HelmClient), new(*container_orchestrator.HelmClient)),
	container_orchestrator.ProvideKubernetes,
	wire.Bind(new(ports.KubeContext), new(*container_orchestrator.Kubernetes)),
	artifact_hub.ProvideArtifactHubClient,
	wire.Bind(new(ports.ChartRegistry), new(*artifact_hub.Client)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideConsole,
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideConfig,
	core.ProvideKeyringCredentialsRepository,
	wire.Bind(new(core.CredentialsRepository), new(*core.KeyringCredentialsRepository)),
	core.ProvideReleaseManager,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
	handler.ProvideSearchCommandHandler,
)

func InjectMenuCommandHandler(path core.ConfigPath, overrides core.ConfigOverrides) (*handler.MenuCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideMenuCommandHandler,
	)
	return &handler.MenuCommandHandler{}, nil
}

func InjectSearchCommandHandler(path core.ConfigPath, overrides core.ConfigOverrides) (handler.SearchCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
	)
	return handler.SearchCommandHandler{}, nil
}

func InjectCredentialsCommandHandler() (handler.CredentialsCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCredentialsCommandHandler,
	)
	return handler.CredentialsCommandHandler{}, nil
}

func InjectInitializeCommandHandler(path core.ConfigPath) (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
