// Command crcsum checksums files with the five preset CRC profiles and can
// report per-kernel throughput. Files ending in .gz are checksummed over
// their decompressed content. With no arguments it runs a self-check over
// the string "1234567890".
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/LynnColeArt/crcengine"
)

var presets = []struct {
	name    string
	profile crcengine.Profile
}{
	{"CRC16", crcengine.ProfileCRC16()},
	{"CRC16-CCITT", crcengine.ProfileCRC16CCITT()},
	{"CRC32", crcengine.ProfileCRC32()},
	{"CRC64", crcengine.ProfileCRC64()},
	{"CRC64-ISO", crcengine.ProfileCRC64ISO()},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("crcsum: ")

	var (
		bench      = flag.Bool("bench", false, "time each preset and each CRC32 kernel over the input")
		tune       = flag.Bool("tune", false, "let every engine benchmark its kernels before hashing")
		kernelName = flag.String("kernel", "", `kernel override: byte, 1x32, 2x32, 4x32, 8x32 or "auto"`)
		window     = flag.Int("window", 1<<20, "read window in bytes")
		showCPU    = flag.Bool("cpu", false, "print detected CPU features and exit")
	)
	flag.Parse()

	if *showCPU {
		fmt.Println(crcengine.CPUInfo())
		fmt.Printf("Recommended kernel: %s\n", crcengine.RecommendedKernel())
		return
	}

	kernel := crcengine.Kernel(-1)
	if *kernelName != "" {
		if *kernelName == "auto" {
			kernel = crcengine.RecommendedKernel()
		} else {
			k, err := crcengine.ParseKernel(*kernelName)
			if err != nil {
				log.Fatal(err)
			}
			kernel = k
		}
	}

	if flag.NArg() == 0 {
		selfCheck(kernel, *tune)
		return
	}

	// One engine set per file, so files hash concurrently.
	reports := make([]string, flag.NArg())
	var g errgroup.Group
	for i, path := range flag.Args() {
		g.Go(func() error {
			report, err := sumFile(path, kernel, *tune, *bench, *window)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	for _, r := range reports {
		fmt.Print(r)
	}
}

func newEngines(kernel crcengine.Kernel, tune bool) []crcengine.Hash {
	engines := make([]crcengine.Hash, len(presets))
	for i, p := range presets {
		e, err := crcengine.NewHash(p.profile)
		if err != nil {
			log.Fatalf("%s: %v", p.name, err)
		}
		if tune {
			e.Tune(0, 0)
		}
		if kernel >= 0 {
			e.SetKernel(kernel)
		}
		engines[i] = e
	}
	return engines
}

func selfCheck(kernel crcengine.Kernel, tune bool) {
	engines := newEngines(kernel, tune)
	for i, e := range engines {
		e.Consume([]byte("1234567890"))
		fmt.Printf("%-14s %0*X\n", presets[i].name+":", e.Size()*2, e.Digest64())
	}
}

func sumFile(path string, kernel crcengine.Kernel, tune, bench bool, window int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		in = zr
	}

	engines := newEngines(kernel, tune)
	presetTimes := make([]time.Duration, len(engines))

	// Kernel comparison runs CRC32 once per kernel, like the presets all
	// fed from the same read window.
	kernels := []crcengine.Kernel{
		crcengine.KernelByte,
		crcengine.Kernel1x32,
		crcengine.Kernel2x32,
		crcengine.Kernel4x32,
		crcengine.Kernel8x32,
	}
	var kernelEngines []*crcengine.Engine[uint32]
	kernelTimes := make([]time.Duration, len(kernels))
	if bench {
		for range kernels {
			kernelEngines = append(kernelEngines, crcengine.NewCRC32())
		}
	}

	buf := make([]byte, window)
	var total int64
	for {
		n, err := io.ReadFull(in, buf)
		if n > 0 {
			total += int64(n)
			chunk := buf[:n]
			for i, e := range engines {
				start := time.Now()
				e.Consume(chunk)
				presetTimes[i] += time.Since(start)
			}
			for i, e := range kernelEngines {
				start := time.Now()
				e.ConsumeWith(chunk, kernels[i])
				kernelTimes[i] += time.Since(start)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d bytes)\n", path, total)
	for i, e := range engines {
		fmt.Fprintf(&b, "  %-14s %0*X", presets[i].name+":", e.Size()*2, e.Digest64())
		if bench {
			fmt.Fprintf(&b, "  %10.6fs  %9.3f MiB/s", presetTimes[i].Seconds(), mibps(total, presetTimes[i]))
		}
		b.WriteByte('\n')
	}
	if bench {
		fmt.Fprintf(&b, "  CRC32 kernels:\n")
		for i, k := range kernels {
			fmt.Fprintf(&b, "  %-14s %08X  %10.6fs  %9.3f MiB/s\n",
				k.String()+":", kernelEngines[i].Digest(), kernelTimes[i].Seconds(), mibps(total, kernelTimes[i]))
		}
	}
	return b.String(), nil
}

func mibps(total int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(total) / (1024 * 1024) / d.Seconds()
}
