// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/consensys/go-primefield/pkg/field"
	"github.com/consensys/go-primefield/pkg/field/modp"
	"github.com/consensys/go-primefield/pkg/field/prime"
	"github.com/consensys/go-primefield/pkg/util"
	"github.com/consensys/go-primefield/smallfield"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "compare the performance of field representations.",
	Long: `Time multiplication and inversion over a 31-bit field using a runtime modulus,
	a compile-time modulus and Montgomery form.  Use --verbose for allocation
	statistics.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n := GetUint(cmd, "count")
		//
		results, err := benchmark(n)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		for _, r := range results {
			fmt.Printf("%-28s %12v (%v/op)\n", r.name, r.elapsed, r.elapsed/time.Duration(max(n, 1)))
		}
	},
}

type benchResult struct {
	name    string
	elapsed time.Duration
	// Final value computed, which is checked for consistency.
	value uint64
}

// benchmark runs each benchmark for n iterations, checking all
// representations compute the same result.
func benchmark(n uint) ([]benchResult, error) {
	f, err := prime.NewField(modp.BabyBear{}.Modulus())
	if err != nil {
		return nil, err
	}
	//
	seed, err := f.Random(rand.Reader)
	if err != nil {
		return nil, err
	}
	// Ensure seed is non-zero
	if seed.IsZero() {
		seed = f.One()
	}
	//
	log.Debugf("benchmarking %d iterations in %s with seed %s", n, f, seed)
	//
	results := []benchResult{
		timeIt("mul (runtime modulus)", func() uint64 {
			acc := seed
			for range n {
				acc, _ = acc.Mul(seed)
			}
			return acc.Uint64()
		}),
		timeIt("mul (static modulus)", func() uint64 {
			x := modp.Uint64[modp.BabyBear](seed.Uint64())
			acc := x
			for range n {
				acc = acc.Mul(x)
			}
			return acc.Uint64()
		}),
		timeIt("mul (montgomery)", func() uint64 {
			sf := smallfield.New(uint32(f.Modulus()))
			x := sf.NewElement(uint32(seed.Uint64()))
			acc := x
			for range n {
				acc = sf.Mul(acc, x)
			}
			return uint64(sf.ToUint32(acc))
		}),
	}
	//
	inverses := []benchResult{
		timeIt("inverse (one at a time)", func() uint64 {
			var acc = f.Zero()
			for i := range n {
				// zero has no inverse, and is skipped
				if inv, err := f.Uint64(uint64(i) + 1).Inverse(); err == nil {
					acc, _ = acc.Add(inv)
				}
			}
			return acc.Uint64()
		}),
		timeIt("inverse (batched)", func() uint64 {
			xs := make([]modp.Element[modp.BabyBear], n)
			for i := range xs {
				xs[i] = modp.Uint64[modp.BabyBear](uint64(i) + 1)
			}
			field.BatchInvert(xs)
			return field.Sum(xs...).Uint64()
		}),
	}
	// Sanity check results agree
	if err := checkAgree(results); err != nil {
		return nil, err
	} else if err := checkAgree(inverses); err != nil {
		return nil, err
	}
	//
	return append(results, inverses...), nil
}

func timeIt(name string, fn func() uint64) benchResult {
	stats := util.NewPerfStats()
	value := fn()
	stats.Log(name)
	//
	return benchResult{name, stats.Elapsed(), value}
}

func checkAgree(results []benchResult) error {
	for _, r := range results[1:] {
		if r.value != results[0].value {
			return fmt.Errorf("%s computed %d, but %s computed %d", r.name, r.value, results[0].name, results[0].value)
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("count", 1000000, "number of iterations")
}
