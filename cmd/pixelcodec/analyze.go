package main

import (
	"fmt"
	"os"

	"github.com/cocosip/pixelcodec/codec"
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/dicom"
	"github.com/cocosip/pixelcodec/modality"
	"github.com/cocosip/pixelcodec/pipeline"
)

// runAnalyze tries every registered codec against the input image in every
// mode that codec's capabilities support, reporting the resulting ratio
// (spec §6).
func runAnalyze(args []string) error {
	fs := newFlagSet("analyze")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: analyze <input>")
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}
	inst, err := dicom.Parse(data)
	if err != nil {
		return err
	}

	preset := modality.FromCode(inst.Modality).DefaultPreset()
	p := pipeline.New()

	for _, kind := range codec.List() {
		c, err := codec.Get(kind)
		if err != nil {
			return err
		}
		caps := c.Capabilities()

		modes := []config.Mode{}
		if caps.SupportsLossless {
			modes = append(modes, config.Lossless)
		}
		if caps.SupportsLossy {
			modes = append(modes, config.Lossy)
		}
		if caps.SupportsNearLossless {
			modes = append(modes, config.NearLossless)
		}

		for _, mode := range modes {
			cfg := config.New(kind, mode, preset).WithOverrideSafety(true)
			result, err := p.Compress(inst, cfg)
			if err != nil {
				fmt.Printf("%s (%s): skipped: %v\n", c.Name(), mode, err)
				continue
			}
			fmt.Printf("%s (%s, %s): ratio %.3f (%d -> %d bytes, %.1f%% smaller)\n",
				result.CodecName, mode, result.TransferSyntaxUID, result.Ratio,
				result.OriginalSize, result.CompressedSize, result.Savings())
		}
	}
	return nil
}
