// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"
)

func TestMustSetenvRestoresPrevious(t *testing.T) {
	const key = "TESTUTIL_SETENV_KEY"
	if err := os.Setenv(key, "before"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	restore := MustSetenv(t, key, "during")
	if got := os.Getenv(key); got != "during" {
		t.Fatalf("env = %q, want %q", got, "during")
	}

	restore()
	if got := os.Getenv(key); got != "before" {
		t.Errorf("after restore env = %q, want %q", got, "before")
	}
}

func TestMustSetenvUnsetsWhenAbsent(t *testing.T) {
	const key = "TESTUTIL_SETENV_ABSENT_KEY"
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}

	restore := MustSetenv(t, key, "during")
	restore()

	if _, ok := os.LookupEnv(key); ok {
		t.Error("restore should unset a variable that was not set before")
	}
}

func TestMustUnsetenvRestoresPrevious(t *testing.T) {
	const key = "TESTUTIL_UNSETENV_KEY"
	if err := os.Setenv(key, "before"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	restore := MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Fatal("variable should be unset")
	}

	restore()
	if got := os.Getenv(key); got != "before" {
		t.Errorf("after restore env = %q, want %q", got, "before")
	}
}
