// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths in modpad:
//   - Command text encoding and decoding in every format
//   - Table parsing and serialization
//   - Live sync keystroke handling
//   - Document load and save through compressed encodings
//
// To generate a profile, run:
//
//	go test ./internal/benchmark -run '^$' -bench . -cpuprofile default.pgo
package benchmark
