// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known issue in the catalog.
type Id int

const (
	ContainerRuntimeNotFoundId Id = iota + 1
	EngineInfoUnreliableId
	ConfigLoadFailedId
	UnknownEnginePreferenceId
)

// HttpLink is a URL pointing at documentation for an issue.
type HttpLink string

// Issue describes a known failure condition with pointers to docs that
// help the user resolve it.
type Issue struct {
	id       Id       // ID used to look up the issue
	summary  string   // one-line description shown to the user
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Summary() string {
	return i.summary
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

var catalog = map[Id]*Issue{
	ContainerRuntimeNotFoundId: {
		id:      ContainerRuntimeNotFoundId,
		summary: "No container runtime was found on this host.",
		docLinks: []HttpLink{
			"https://docs.docker.com/engine/install/",
			"https://podman.io/docs/installation",
		},
	},
	EngineInfoUnreliableId: {
		id:      EngineInfoUnreliableId,
		summary: "The container engine's info command failed; rootless detection may be unreliable.",
		docLinks: []HttpLink{
			"https://docs.docker.com/engine/security/rootless/",
			"https://github.com/containers/podman/blob/main/docs/tutorials/rootless_tutorial.md",
		},
	},
	ConfigLoadFailedId: {
		id:      ConfigLoadFailedId,
		summary: "The crdetect configuration file could not be loaded.",
		docLinks: []HttpLink{
			"https://toml.io/en/v1.0.0",
		},
	},
	UnknownEnginePreferenceId: {
		id:      UnknownEnginePreferenceId,
		summary: "The configured container_engine value is not recognized; only docker and podman are supported.",
		docLinks: []HttpLink{
			"https://docs.docker.com/engine/install/",
			"https://podman.io/docs/installation",
		},
	},
}

// Lookup returns the catalog entry for id.
func Lookup(id Id) (*Issue, bool) {
	i, ok := catalog[id]
	return i, ok
}

// KnownIds returns all catalog ids in ascending order.
func KnownIds() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
