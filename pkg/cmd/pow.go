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
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var powCmd = &cobra.Command{
	Use:   "pow [flags] x n",
	Short: "raise a field element to a given power.",
	Long: `Compute x^n over the field given by --field or --modulus.  A negative exponent
	n is computed via the inverse of x, and hence fails when x is zero.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		f := getField(cmd)
		x := getElements(f, args[:1])[0]
		//
		n, err := strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			fmt.Printf("invalid exponent \"%s\"\n", args[1])
			os.Exit(2)
		}
		//
		log.Debugf("computing (%s)^%d", x, n)
		//
		r, err := x.Exp(n)
		if err != nil {
			exitWith(err)
		}
		//
		fmt.Println(r)
	},
}

func init() {
	rootCmd.AddCommand(powCmd)
}
