// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// verbose activates test printing
func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_lin2(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin2. partition of unity and gradients")

	o := NewLin2()
	x := []float64{0.3, 0.8}
	ips, err := GaussLegendre(3)
	if err != nil {
		tst.Errorf("GaussLegendre failed:\n%v", err)
		return
	}
	for _, ip := range ips {
		if err := o.CalcAtIp(x, ip); err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		chk.Float64(tst, "ΣS", 1e-15, o.S[0]+o.S[1], 1)
		chk.Float64(tst, "ΣG", 1e-15, o.G[0]+o.G[1], 0)
		chk.Float64(tst, "J", 1e-15, o.J, 0.25)

		// interpolation of the coordinate itself recovers the ip position
		xip := o.IpRealCoord(x, ip)
		chk.Float64(tst, "xip", 1e-14, o.S[0]*x[0]+o.S[1]*x[1], xip)
	}

	// degenerate cell fails
	if err := o.CalcAtIp([]float64{1, 1}, ips[0]); err == nil {
		tst.Errorf("zero-length cell must fail")
	}
}

func Test_gauss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss01. weights and symmetry")

	for n := 1; n <= 6; n++ {
		ips, err := GaussLegendre(n)
		if err != nil {
			tst.Errorf("GaussLegendre(%d) failed:\n%v", n, err)
			return
		}
		chk.IntAssert(len(ips), n)
		sum := 0.0
		for _, ip := range ips {
			sum += ip.W
		}
		chk.Float64(tst, io.Sf("Σw (n=%d)", n), 1e-13, sum, 2)
	}

	// reference 2-point rule
	ips, _ := GaussLegendre(2)
	r := 1.0 / math.Sqrt(3.0)
	chk.Float64(tst, "|r|", 1e-14, math.Abs(ips[0].R), r)
	chk.Float64(tst, "w", 1e-14, ips[0].W, 1)
}

func Test_gauss02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss02. polynomial exactness up to degree 2n-1")

	// ∫ x^k dx over [-1,1] = 2/(k+1) for even k, 0 for odd k
	for n := 2; n <= 5; n++ {
		ips, err := GaussLegendre(n)
		if err != nil {
			tst.Errorf("GaussLegendre(%d) failed:\n%v", n, err)
			return
		}
		for k := 0; k <= 2*n-1; k++ {
			num := 0.0
			for _, ip := range ips {
				num += ip.W * math.Pow(ip.R, float64(k))
			}
			ana := 0.0
			if k%2 == 0 {
				ana = 2.0 / float64(k+1)
			}
			chk.AnaNum(tst, io.Sf("∫x^%d (n=%d)", k, n), 1e-13, ana, num, chk.Verbose)
		}
	}
}
