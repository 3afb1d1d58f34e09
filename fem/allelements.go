// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// this file registers all available elements

import (
	_ "github.com/Arthur-phys/Dzahui/ele/diffusion"
	_ "github.com/Arthur-phys/Dzahui/ele/fluid"
)
