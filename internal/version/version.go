// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package version

// Version is overwritten at build time with -ldflags "-X ...".
var Version = "dev"
