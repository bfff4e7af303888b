// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow holds the client's UI state machine.
//
// Every user action and every network result is an [Event]. [Transition]
// folds an event into the current [State] and returns the new state together
// with the [Effect] values the runtime must perform (network calls, token
// storage, navigation). The package performs no I/O, so the whole page and
// panel logic is testable without a terminal or a server.
package flow
