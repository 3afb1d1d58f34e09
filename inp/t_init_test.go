// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// verbose activates test printing. Use as the first statement of a test
func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
