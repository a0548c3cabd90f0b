package ports

import "chartmenu/internal/core/domain"

// HelmClient runs helm operations against the local helm installation.
type HelmClient interface {
	// Execute runs the operation with the terminal attached and waits for it to finish.
	// A non-zero exit is reported as *domain.ExternalCommandError.
	Execute(op domain.HelmOperation) error
}
