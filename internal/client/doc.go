// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the userkeeper-cli command-line client.
//
// Commands are defined with urfave/cli and talk to the server through an
// [adapter.ServerAdapter], so tests can swap the transport for a mock.
package client
