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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] x op y",
	Short: "evaluate a binary operation over a prime field.",
	Long: `Evaluate x op y, where op is one of "+", "-", "*" or "/", over the field given
	by --field or --modulus.  Operands may be negative or exceed the modulus, in which
	case they are first reduced.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		f := getField(cmd)
		//
		operands := getElements(f, []string{args[0], args[2]})
		log.Debugf("evaluating %s %s %s", operands[0], args[1], operands[1])
		//
		r, err := evaluate(operands[0], args[1], operands[1])
		if err != nil {
			exitWith(err)
		}
		//
		fmt.Println(r)
	},
}

// evaluate a binary operation given its textual operator.
func evaluate(x prime.Element, op string, y prime.Element) (prime.Element, error) {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*", "x":
		return x.Mul(y)
	case "/":
		return x.Div(y)
	default:
		return prime.Element{}, fmt.Errorf("unknown operator \"%s\"", op)
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
