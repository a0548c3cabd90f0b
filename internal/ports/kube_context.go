package ports

import "context"

// KubeContext answers questions about the cluster selected in the current kubeconfig.
type KubeContext interface {
	// CurrentNamespace returns the namespace of the current context, "default" when unset.
	CurrentNamespace() (string, error)
	NamespaceExists(ctx context.Context, name string) (bool, error)
}
