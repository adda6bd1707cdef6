// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoRegistryServersConfigured = errors.New("no registry servers are configured")
)
