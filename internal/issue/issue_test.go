// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	i, ok := Lookup(ContainerRuntimeNotFoundId)
	if !ok {
		t.Fatal("Lookup(ContainerRuntimeNotFoundId) not found")
	}
	if i.Id() != ContainerRuntimeNotFoundId {
		t.Errorf("Id() = %d, want %d", i.Id(), ContainerRuntimeNotFoundId)
	}
	if i.Summary() == "" {
		t.Error("Summary() should not be empty")
	}
	if len(i.DocLinks()) == 0 {
		t.Error("DocLinks() should not be empty")
	}

	if _, ok := Lookup(Id(9999)); ok {
		t.Error("Lookup of an unknown id should report not found")
	}
}

func TestDocLinksAreCopies(t *testing.T) {
	t.Parallel()

	i, _ := Lookup(ContainerRuntimeNotFoundId)
	links := i.DocLinks()
	links[0] = "https://example.invalid/"

	again := i.DocLinks()
	if again[0] == "https://example.invalid/" {
		t.Error("mutating the returned slice must not alter the catalog")
	}
}

func TestKnownIds(t *testing.T) {
	t.Parallel()

	ids := KnownIds()
	if len(ids) == 0 {
		t.Fatal("KnownIds() should not be empty")
	}
	for n := 1; n < len(ids); n++ {
		if ids[n-1] >= ids[n] {
			t.Fatalf("KnownIds() not sorted ascending: %v", ids)
		}
	}
	for _, id := range ids {
		i, ok := Lookup(id)
		if !ok {
			t.Fatalf("KnownIds() returned %d but Lookup misses it", id)
		}
		for _, link := range i.DocLinks() {
			if !strings.HasPrefix(string(link), "https://") {
				t.Errorf("issue %d carries a non-https doc link %q", id, link)
			}
		}
	}
}
