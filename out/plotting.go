// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/gotraj/poly"
)

// PlotProfiles draws one subplot per derivative with all dimensions overlaid
// and saves the figure as <dirout>/<fnkey>.png
func PlotProfiles(tab *Table, kmax int, dirout, fnkey string) {
	if kmax < 0 || kmax > poly.MaxDeriv {
		kmax = poly.MaxDeriv
	}
	plt.Reset()
	for k := 0; k <= kmax; k++ {
		plt.Subplot(kmax+1, 1, k+1)
		for j := 0; j < tab.Tj.Ndim; j++ {
			plt.Plot(tab.T, tab.V[k][j], io.Sf("label='dim %d'", j))
		}
		plt.Gll("$t$", DerivNames[k], "")
	}
	plt.SaveD(dirout, fnkey+".png")
}

// PlotPath draws the planar path of two dimensions against each other and
// saves the figure as <dirout>/<fnkey>-path.png
func PlotPath(tab *Table, jx, jy int, dirout, fnkey string) {
	plt.Reset()
	plt.Plot(tab.V[0][jx], tab.V[0][jy], "")
	plt.Gll(io.Sf("$x_%d$", jx), io.Sf("$x_%d$", jy), "")
	plt.SaveD(dirout, fnkey+"-path.png")
}
