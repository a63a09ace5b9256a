// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types: ActionableError carries
// operation context and fix suggestions, and the issue catalog maps known
// failure conditions to documentation links.
package issue
