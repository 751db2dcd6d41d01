package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/cortexm"
	"github.com/OpenTraceLab/OpenTraceCortex/pkg/device"
	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
	"github.com/OpenTraceLab/OpenTraceCortex/pkg/target"
)

var (
	// Global flags
	verbose     bool
	adapterType string
	memFile     string
	elfPath     string
	probeVID    string
	probePID    string
	svdPaths    []string
	regmapPaths []string

	// Report modifiers, shared by every dump command
	showDescr  bool
	showAll    bool
	showBinary bool
	forceAll   bool
)

var rootCmd = &cobra.Command{
	Use:   "armview",
	Short: "ARM Cortex-M system register inspector",
	Long: `Decode and render Cortex-M hardware register state from a live target:
SCB, SysTick, FPU, MPU, NVIC interrupt lines and vendor peripherals
described by SVD or regmap files.

Examples:
  armview scb --adapter cmsis-dap --descr          # Dump SCB from a DAP probe
  armview nvic --elf firmware.elf                  # Interrupt state with handler names
  armview inspect NRF52 UARTE0 --svd nrf52.svd --adapter sim --mem dump.txt`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&adapterType, "adapter", "sim", "target adapter: sim or cmsis-dap")
	pf.StringVar(&memFile, "mem", "", "simulator: memory dump file (addr = value lines)")
	pf.StringVar(&elfPath, "elf", "", "ELF image for handler symbol names")
	pf.StringVar(&probeVID, "vid", "", "probe USB vendor ID (hex), overrides autodetect")
	pf.StringVar(&probePID, "pid", "", "probe USB product ID (hex), overrides autodetect")
	pf.StringSliceVar(&svdPaths, "svd", nil, "SVD descriptor to load, NAME=PATH or PATH")
	pf.StringSliceVar(&regmapPaths, "regmap", nil, "regmap descriptor to load, NAME=PATH or PATH")

	pf.BoolVarP(&showDescr, "descr", "H", false, "show register and field descriptions")
	pf.BoolVarP(&showAll, "all", "a", false, "show all fields, including default values")
	pf.BoolVarP(&showBinary, "binary", "b", false, "show bit positions in binary instead of hex")
	pf.BoolVar(&forceAll, "force", false, "ignore model filtering, show every defined field")
}

func reportOptions() regs.Options {
	return regs.Options{
		Descr:  showDescr,
		All:    showAll,
		Binary: showBinary,
		Force:  forceAll,
	}
}

// openTarget builds the memory reader selected by --adapter. The returned
// closer releases probe resources; for the simulator it is a no-op.
func openTarget() (regs.MemoryReader, func() error, error) {
	switch adapterType {
	case "sim", "simulator":
		sim := target.NewSimTarget()
		if memFile != "" {
			if err := sim.LoadDump(memFile); err != nil {
				return nil, nil, err
			}
		}
		return sim, func() error { return nil }, nil

	case "cmsis-dap", "dap":
		var probe *target.DAPProbe
		var err error
		if probeVID != "" || probePID != "" {
			vid, perr := parseHex16(probeVID)
			if perr != nil {
				return nil, nil, fmt.Errorf("bad --vid: %w", perr)
			}
			pid, perr := parseHex16(probePID)
			if perr != nil {
				return nil, nil, fmt.Errorf("bad --pid: %w", perr)
			}
			probe, err = target.OpenDAPProbeVIDPID(vid, pid)
		} else {
			probe, err = target.OpenDAPProbe()
		}
		if err != nil {
			return nil, nil, err
		}
		if verbose {
			info := probe.Info()
			fmt.Printf("probe: %s %s (fw %s, serial %s)\n",
				info.Vendor, info.Product, info.Firmware, info.Serial)
		}
		return probe, probe.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown adapter type %q", adapterType)
	}
}

func parseHex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	return uint16(v), err
}

// detectModel identifies the core. Detection failures degrade to the zero
// model set so architecture-common fields still render.
func detectModel(mr regs.MemoryReader) regs.ModelSet {
	m, err := cortexm.DetectModel(mr)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "model detection failed: %v\n", err)
		}
		return 0
	}
	if verbose {
		fmt.Printf("core: Cortex-%s (ARM%s-M)\n", cortexm.ModelName(m), cortexm.ArchName(m))
	}
	return m
}

// loadSymbols returns the ELF symbol resolver when --elf was given.
func loadSymbols() (cortexm.SymbolResolver, error) {
	if elfPath == "" {
		return nil, nil
	}
	return target.NewELFSymbols(elfPath)
}

// splitLoadArg splits a descriptor flag of the form NAME=PATH. A bare PATH
// yields an empty name; the descriptor's own name is used then.
func splitLoadArg(arg string) (name, path string) {
	if n, p, ok := strings.Cut(arg, "="); ok {
		return n, p
	}
	return "", arg
}

// loadRegistry loads every --svd and --regmap descriptor.
func loadRegistry() (*device.Registry, error) {
	reg := device.NewRegistry()
	for _, arg := range svdPaths {
		name, path := splitLoadArg(arg)
		dev, err := device.LoadSVD(path)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = dev.Name
		}
		reg.Load(name, dev)
		if verbose {
			fmt.Printf("loaded SVD device %s (%d peripherals)\n", name, len(dev.Peripherals))
		}
	}
	if len(regmapPaths) > 0 {
		parser, err := device.NewRegmapParser()
		if err != nil {
			return nil, err
		}
		for _, arg := range regmapPaths {
			name, path := splitLoadArg(arg)
			devs, err := parser.ParseFile(path)
			if err != nil {
				return nil, err
			}
			if name != "" && len(devs) != 1 {
				return nil, fmt.Errorf("--regmap %s=%s: file declares %d devices, a name needs exactly one", name, path, len(devs))
			}
			for _, dev := range devs {
				devName := name
				if devName == "" {
					devName = dev.Name
				}
				reg.Load(devName, dev)
				if verbose {
					fmt.Printf("loaded regmap device %s (%d peripherals)\n", devName, len(dev.Peripherals))
				}
			}
		}
	}
	return reg, nil
}

// runBlockDump is the shared body of the scb/systick/fpu commands.
func runBlockDump(blocks ...regs.Block) error {
	mr, closer, err := openTarget()
	if err != nil {
		return err
	}
	defer closer()

	detected := detectModel(mr)
	opts := reportOptions()
	for i := range blocks {
		regs.FormatBlock(os.Stdout, &blocks[i], mr, detected, opts)
	}
	return nil
}
