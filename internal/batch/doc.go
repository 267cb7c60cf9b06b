// SPDX-License-Identifier: EPL-2.0

// Package batch expands the input pattern into candidate files and runs
// the encoder over them one at a time, skipping files whose output
// already exists.
package batch
