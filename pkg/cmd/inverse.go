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
	"fmt"

	"github.com/consensys/go-primefield/pkg/field/prime"
	"github.com/spf13/cobra"
)

var inverseCmd = &cobra.Command{
	Use:   "inverse [flags] x...",
	Short: "compute multiplicative inverses.",
	Long: `Compute the multiplicative inverses of the given values over the field given by
	--field or --modulus, as a single batch.  Zero has no inverse and is reported as an error.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			f        = getField(cmd)
			elements = getElements(f, args)
		)
		//
		inverses, err := invertAll(elements)
		if err != nil {
			exitWith(err)
		}
		//
		for i, inv := range inverses {
			fmt.Printf("%s⁻¹ = %s\n", elements[i], inv)
		}
	},
}

// invertAll inverts a batch of elements using Montgomery's trick, such that only
// a single field inversion is performed.  The batch fails as a whole if any
// element is zero.
func invertAll(elements []prime.Element) ([]prime.Element, error) {
	var (
		n        = len(elements)
		prefix   = make([]prime.Element, n)
		inverses = make([]prime.Element, n)
		err      error
	)
	//
	if n == 0 {
		return inverses, nil
	}
	// prefix[i] holds the product of all elements before i.
	acc := prime.NewUint64(1, elements[0].Modulus())
	//
	for i, e := range elements {
		prefix[i] = acc
		//
		if acc, err = acc.Mul(e); err != nil {
			return nil, err
		}
	}
	// A zero anywhere in the batch makes the product zero.
	inv, err := acc.Inverse()
	if err != nil {
		return nil, err
	}
	// Unwind, peeling off one element at a time.
	for i := n - 1; i >= 0; i-- {
		if inverses[i], err = inv.Mul(prefix[i]); err != nil {
			return nil, err
		} else if inv, err = inv.Mul(elements[i]); err != nil {
			return nil, err
		}
	}
	//
	return inverses, nil
}

func init() {
	rootCmd.AddCommand(inverseCmd)
}
