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
	"math/bits"

	"github.com/consensys/go-primefield/pkg/field"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "list well-known fields.",
	Long:  "List the well-known fields which can be selected by name with --field.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range field.FIELD_CONFIGS {
			fmt.Printf("%-12s %20d (%d bits)\n", c.Name, c.Modulus, bits.Len64(c.Modulus))
		}
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
