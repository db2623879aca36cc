// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package endpoint provides HTTP glue for the handler package: a chi
// router that parses incoming requests into handler envelopes, invokes
// the matching handler, and writes the returned response. It performs no
// protocol logic of its own.
package endpoint
