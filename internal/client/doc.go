// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the local session store for a single process
// lifecycle: the UI opens on the configured start page and the store is
// closed when the UI exits.
package client
