package container_orchestrator

import (
	"context"
	"fmt"

	"chartmenu/internal/cli/log"
	"chartmenu/internal/ports"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

var _ ports.KubeContext = (*Kubernetes)(nil)

// Kubernetes reads the current kubeconfig context. The clientset is only built when a
// cluster lookup is needed so that catalog actions work without a cluster.
type Kubernetes struct {
	clientConfig clientcmd.ClientConfig
	newClientSet func() (kubernetes.Interface, error)
	clientSet    kubernetes.Interface
}

// ProvideKubernetes loads the kubeconfig the same way kubectl does ($KUBECONFIG, then
// ~/.kube/config).
func ProvideKubernetes() *Kubernetes {
	return newKubernetes(clientcmd.NewDefaultClientConfigLoadingRules())
}

// newKubernetesFromFile reads a single kubeconfig file. Used by tests.
func newKubernetesFromFile(kubeConfigPath string) *Kubernetes {
	return newKubernetes(&clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeConfigPath})
}

func newKubernetes(rules *clientcmd.ClientConfigLoadingRules) *Kubernetes {
	k := &Kubernetes{
		clientConfig: clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}),
	}
	k.newClientSet = func() (kubernetes.Interface, error) {
		restConfig, err := k.clientConfig.ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create kubernetes config: %w", err)
		}
		clientSet, err := kubernetes.NewForConfig(restConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
		}
		return clientSet, nil
	}
	return k
}

// CurrentNamespace returns the namespace of the current context, "default" when unset.
func (k *Kubernetes) CurrentNamespace() (string, error) {
	namespace, _, err := k.clientConfig.Namespace()
	if err != nil {
		return "", fmt.Errorf("failed to read kubeconfig namespace: %w", err)
	}
	if namespace == "" {
		return "default", nil
	}
	return namespace, nil
}

// NamespaceExists reports whether the namespace exists in the current cluster.
func (k *Kubernetes) NamespaceExists(ctx context.Context, name string) (bool, error) {
	if k.clientSet == nil {
		clientSet, err := k.newClientSet()
		if err != nil {
			return false, err
		}
		k.clientSet = clientSet
	}

	_, err := k.clientSet.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		log.Logger().WithField("namespace", name).Debug("namespace not found")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get namespace %s: %w", name, err)
	}
	return true, nil
}
