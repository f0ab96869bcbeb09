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

	"github.com/consensys/go-primefield/pkg/field/modp"
	"github.com/consensys/go-primefield/pkg/field/prime"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "demonstrate prime field arithmetic.",
	Long: `Run through a few worked examples of prime field arithmetic, for fields fixed
	at compile time and fields chosen at runtime.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, line := range demo() {
			fmt.Println(line)
		}
	},
}

// demo computes the worked examples, returning one line of output for each.
func demo() []string {
	var (
		twelve = modp.New[modp.P17](12)
		five   = modp.New[modp.P17](5)
		one    = modp.New[modp.P2](1)
		lines  []string
	)
	// Static fields
	lines = append(lines,
		fmt.Sprintf("12 + 5 in Z17 = %s", twelve.Add(five)),
		fmt.Sprintf("12 * 5 in Z17 = %s", twelve.Mul(five)),
		fmt.Sprintf("1 + 1 in Z2 = %s", one.Add(one)),
	)
	// Dynamic fields
	x, y := prime.New(2, 19), prime.New(7, 19)
	if q, err := x.Div(y); err == nil {
		lines = append(lines, fmt.Sprintf("%s / %s = %s", x, y, q))
	}
	//
	lines = append(lines, fmt.Sprintf("%s ^ 3 = %s", prime.New(3, 13), prime.New(3, 13).Pow(3)))
	// Failures
	if _, err := prime.New(2, 4).Add(prime.New(1, 3)); err != nil {
		lines = append(lines, fmt.Sprintf("2 (mod 4) + 1 (mod 3) fails: %v", err))
	}
	//
	if _, err := x.Div(prime.New(0, 19)); err != nil {
		lines = append(lines, fmt.Sprintf("%s / 0 fails: %v", x, err))
	}
	//
	return lines
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
