package handler

import (
	"chartmenu/internal/cli/output"
	"chartmenu/internal/core"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
)

// CredentialsCommandHandler manages the Artifact Hub API key kept in the OS keyring.
type CredentialsCommandHandler struct {
	credentialsRepository core.CredentialsRepository
	terminal              ports.TerminalInput
	console               core.Console
}

func ProvideCredentialsCommandHandler(
	credentialsRepository core.CredentialsRepository,
	terminal ports.TerminalInput,
	console core.Console,
) CredentialsCommandHandler {
	return CredentialsCommandHandler{
		credentialsRepository: credentialsRepository,
		terminal:              terminal,
		console:               console,
	}
}

func (h *CredentialsCommandHandler) HandleSet() error {
	id, err := h.terminal.ReadLine("Enter the Artifact Hub API key ID: ")
	if err != nil {
		return err
	}
	secret, err := h.terminal.ReadPassword("Enter the Artifact Hub API key secret: ")
	if err != nil {
		return err
	}

	if err := h.credentialsRepository.SaveAPIKey(domain.APIKey{ID: id, Secret: secret}); err != nil {
		return err
	}
	output.PrintSuccess(h.console.Out, "API key stored in the system keyring")
	return nil
}

func (h *CredentialsCommandHandler) HandleDelete() error {
	if err := h.credentialsRepository.DeleteAPIKey(); err != nil {
		return err
	}
	output.PrintSuccess(h.console.Out, "API key removed from the system keyring")
	return nil
}
