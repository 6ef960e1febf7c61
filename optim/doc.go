// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers for parameters
// differentiated with package autodiff.
//
// # Overview
//
// This package contains:
//   - SGD: Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tapegrad/autodiff"
//	    "github.com/born-ml/tapegrad/optim"
//	)
//
//	func main() {
//	    params := []float64{0, 0}
//	    optimizer := optim.NewAdam(optim.AdamConfig[float64]{LR: 0.05})
//
//	    for step := 0; step < 1000; step++ {
//	        tape := autodiff.NewTape[float64]()
//	        vars := tape.Vars(params...)
//	        loss := lossFunc(vars)
//	        loss.Reverse()
//	        if err := optimizer.Step(params, optim.Grads(vars)); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// Every step records a new tape: recorded values are immutable, so the
// parameters themselves live in a plain slice that Step updates in place.
package optim
