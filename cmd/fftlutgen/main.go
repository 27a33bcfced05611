// Copyright 2025 go-bfp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// fftlutgen generates the FFT twiddle-factor tables as Go source.
//
// The decimation-in-time table concatenates stages with half-block sizes
// b = 4, 8, ..., N/2; the decimation-in-frequency table holds the same
// stages largest-first. Within a stage, factors W(2b)^k are emitted for k
// counted down from b-4 to 0 in groups of four ascending indices, matching
// the order the transforms consume them.
//
// Usage:
//
//	fftlutgen --max-log2 10 --out fft/tables.go
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/tools/imports"
)

var (
	maxLog2 int
	outPath string
)

const licenseHeader = `// Copyright 2025 go-bfp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

`

func q30(f float64) int32 {
	if f >= 0 {
		return int32(math.Floor(f*(1<<30) + 0.5))
	}
	return -int32(math.Floor(-f*(1<<30) + 0.5))
}

// stageTwiddles emits one stage's factors in consumption order.
func stageTwiddles(b int) [][2]int32 {
	var out [][2]int32
	for k0 := b - 4; k0 >= 0; k0 -= 4 {
		for i := 0; i < 4; i++ {
			ang := 2 * math.Pi * float64(k0+i) / float64(2*b)
			out = append(out, [2]int32{q30(math.Cos(ang)), q30(-math.Sin(ang))})
		}
	}
	return out
}

func emitTable(sb *strings.Builder, name, kind string, tab [][2]int32) {
	fmt.Fprintf(sb, "// %s holds the twiddle factors consumed by the %s transforms, in consumption order.\n", name, kind)
	fmt.Fprintf(sb, "var %s = [MaxFFTLen - 4]vpu.ComplexS32{\n", name)
	for i := 0; i < len(tab); i += 2 {
		sb.WriteByte('\t')
		for _, w := range tab[i:min(i+2, len(tab))] {
			fmt.Fprintf(sb, "{Re: %d, Im: %d}, ", w[0], w[1])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
}

func generate() ([]byte, error) {
	n := 1 << uint(maxLog2)

	var dit, dif [][2]int32
	for b := 4; b <= n/2; b <<= 1 {
		dit = append(dit, stageTwiddles(b)...)
	}
	for b := n / 2; b >= 4; b >>= 1 {
		dif = append(dif, stageTwiddles(b)...)
	}

	var sb strings.Builder
	sb.WriteString(licenseHeader)
	fmt.Fprintf(&sb, "// Code generated by fftlutgen --max-log2 %d; DO NOT EDIT.\n\n", maxLog2)
	sb.WriteString("package fft\n\n")
	sb.WriteString(`import "github.com/ajroetker/go-bfp/vpu"` + "\n\n")
	fmt.Fprintf(&sb, "// MaxFFTLenLog2 is the log2 of the largest supported FFT length. Regenerate\n// this file with cmd/fftlutgen to change it.\nconst MaxFFTLenLog2 = %d\n\n", maxLog2)
	sb.WriteString("// MaxFFTLen is the largest supported FFT length.\nconst MaxFFTLen = 1 << MaxFFTLenLog2\n\n")
	emitTable(&sb, "ditLUT", "decimation-in-time", dit)
	sb.WriteString("\n")
	emitTable(&sb, "difLUT", "decimation-in-frequency", dif)

	return imports.Process(outPath, []byte(sb.String()), nil)
}

func run(cmd *cobra.Command, args []string) error {
	if maxLog2 < 2 || maxLog2 > 16 {
		return fmt.Errorf("max-log2 must be in [2, 16], got %d", maxLog2)
	}

	src, err := generate()
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return err
	}

	glog.Infof("wrote %s: %d bytes, 2 tables of %d factors", outPath, len(src), (1<<uint(maxLog2))-4)
	return nil
}

func main() {
	root := &cobra.Command{
		Use:          "fftlutgen",
		Short:        "Generate the FFT twiddle-factor tables as Go source",
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().IntVar(&maxLog2, "max-log2", 10, "log2 of the maximum FFT length")
	root.Flags().StringVar(&outPath, "out", "fft/tables.go", "output file")
	root.Flags().AddGoFlagSet(flag.CommandLine)

	if err := root.Execute(); err != nil {
		glog.Exitf("fftlutgen: %v", err)
	}
}
