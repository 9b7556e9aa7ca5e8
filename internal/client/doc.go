// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the parking-mate API adapter into a
// single process lifecycle: log in, browse, and log out to switch accounts.
package client
