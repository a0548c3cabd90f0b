package domain

// HelmOperation is one of the helm invocations chartmenu knows how to run. The set is
// closed: only types in this package implement it.
type HelmOperation interface {
	// Args returns the argument vector passed to the helm binary.
	Args() []string
	helmOperation()
}

type RepoAdd struct {
	Name string
	URL  string
}

type RepoUpdate struct{}

type RepoRemove struct {
	Name string
}

type Install struct {
	Release   string
	Chart     string
	Namespace string
}

type Upgrade struct {
	Release   string
	Chart     string
	Namespace string
}

// List lists releases in Namespace, or in all namespaces when Namespace is empty.
type List struct {
	Namespace string
}

type Uninstall struct {
	Release string
}

func (o RepoAdd) Args() []string {
	return []string{"repo", "add", o.Name, o.URL}
}

func (o RepoUpdate) Args() []string {
	return []string{"repo", "update"}
}

func (o RepoRemove) Args() []string {
	return []string{"repo", "remove", o.Name}
}

func (o Install) Args() []string {
	return []string{"install", o.Release, o.Chart, "--namespace", o.Namespace}
}

func (o Upgrade) Args() []string {
	return []string{"upgrade", o.Release, o.Chart, "--namespace", o.Namespace}
}

func (o List) Args() []string {
	if o.Namespace == "" {
		return []string{"list", "--all-namespaces"}
	}
	return []string{"list", "--namespace", o.Namespace}
}

func (o Uninstall) Args() []string {
	return []string{"uninstall", o.Release}
}

func (RepoAdd) helmOperation()    {}
func (RepoUpdate) helmOperation() {}
func (RepoRemove) helmOperation() {}
func (Install) helmOperation()    {}
func (Upgrade) helmOperation()    {}
func (List) helmOperation()       {}
func (Uninstall) helmOperation()  {}
