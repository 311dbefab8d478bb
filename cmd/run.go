package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/chip8vm/internal/audio"
	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/bradford-hamilton/chip8vm/internal/pixel"
)

var (
	cpuHz           int
	noVFReset       bool
	noIIncrement    bool
	shiftIgnoresVY  bool
	wrapSprites     bool
	failOnUnknownOp bool
	beepAssetPath   string
)

// runCmd runs the chip8vm virtual machine and waits for a shutdown signal to exit
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8vm,
}

func init() {
	defaults := chip8.DefaultConfig()
	runCmd.Flags().IntVar(&cpuHz, "cpu-hz", defaults.CPUHz, "CPU instruction fetch rate, in Hz")
	runCmd.Flags().BoolVar(&noVFReset, "no-vf-reset", false, "8XY1/8XY2/8XY3 leave VF untouched instead of the classic COSMAC reset to 0")
	runCmd.Flags().BoolVar(&noIIncrement, "no-i-increment", false, "FX55/FX65 leave I unchanged instead of the classic COSMAC I+X+1")
	runCmd.Flags().BoolVar(&shiftIgnoresVY, "shr-shl-ignore-vy", false, "8XY6/8XYE shift VX in place instead of reading VY")
	runCmd.Flags().BoolVar(&wrapSprites, "wrap-sprites", false, "DXYN wraps off-screen pixels to the opposite edge instead of clipping")
	runCmd.Flags().BoolVar(&failOnUnknownOp, "strict-opcodes", true, "halt on an unrecognised opcode instead of skipping it")
	runCmd.Flags().StringVar(&beepAssetPath, "beep-asset", "assets/beep.mp3", "path to the beep clip played while the sound timer is active")
}

func runChip8vm(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	cfg := chip8.DefaultConfig()
	cfg.CPUHz = cpuHz
	cfg.OrAndXorResetsVF = !noVFReset
	cfg.FX55FX65IncrementsI = !noIIncrement
	cfg.ShiftUsesVY = !shiftIgnoresVY
	cfg.DXYNClipElseWrap = !wrapSprites
	if !failOnUnknownOp {
		cfg.UnknownOpcode = chip8.SkipUnknownOpcode
	}

	vm := chip8.NewVM(cfg)
	if err := vm.LoadROMFile(pathToROM); err != nil {
		fmt.Printf("\nerror loading rom: %v\n", err)
		os.Exit(1)
	}

	win, err := pixel.NewWindow()
	if err != nil {
		fmt.Printf("\nerror creating a new window: %v\n", err)
		os.Exit(1)
	}

	beeper := audio.New(beepAssetPath)
	defer beeper.Close()

	scheduler := vm.NewScheduler(win, beeper)
	if err := scheduler.Run(); err != nil {
		fmt.Printf("\nchip8vm halted: %v\n", err)
		os.Exit(1)
	}
}
