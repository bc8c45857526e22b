// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for requests, ballots and
// resets, served from GET /metrics.
package metrics
