package handler

import (
	"fmt"

	"chartmenu/internal/cli/output"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
	console          core.Console
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
	console core.Console,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
		console:          console,
	}
}

func (h *InitializeCommandHandler) Handle() error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("config file %s already exists", h.configRepository.Path())
	}

	config := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}
	output.PrintSuccess(h.console.Out, fmt.Sprintf("Wrote %s", h.configRepository.Path()))
	return nil
}
