package main

import (
	"fmt"
	"os"

	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/dicom"
	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/modality"
	"github.com/cocosip/pixelcodec/pipeline"
)

func runCompress(args []string) error {
	fs := newFlagSet("compress")
	codecFlag := fs.String("c", "jpeg2000", "codec: jpeg2000|j2k, jpegls|jls, uncompressed|raw")
	modeFlag := fs.String("m", "lossless", "mode: lossless, lossy, nearlossless")
	ratio := fs.Float64("r", 0, "target ratio, for lossy mode")
	near := fs.Int("n", 0, "near-lossless tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return errors.New(errors.Configuration, "usage: compress <input> <output> [-c codec] [-m mode] [-r ratio] [-n near]")
	}
	inputPath, outputPath := rest[0], rest[1]

	kind, err := parseCodecKind(*codecFlag)
	if err != nil {
		return err
	}
	mode, err := parseMode(*modeFlag)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	inst, err := dicom.Parse(data)
	if err != nil {
		return err
	}

	preset := modality.FromCode(inst.Modality).DefaultPreset()
	cfg := config.New(kind, mode, preset)
	if *ratio > 0 {
		cfg.WithTargetRatio(*ratio)
	}
	if *near > 0 {
		cfg.WithNearLossless(*near)
	}

	p := pipeline.New()
	result, err := p.Compress(inst, cfg)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if err := result.WriteToFile(outputPath); err != nil {
		return err
	}
	fmt.Printf("%s -> %s [%s, %s]: %d -> %d bytes (ratio %.3f, %.1f%% smaller, %dms)\n",
		inputPath, result.OutputPath, result.CodecName, result.TransferSyntaxUID,
		result.OriginalSize, result.CompressedSize, result.Ratio, result.Savings(), result.ElapsedMs)
	return nil
}

func parseCodecKind(s string) (config.CodecKind, error) {
	switch s {
	case "jpeg2000", "j2k":
		return config.JPEG2000, nil
	case "jpegls", "jls":
		return config.JPEGLS, nil
	case "uncompressed", "raw":
		return config.Uncompressed, nil
	default:
		return 0, errors.New(errors.Configuration, "unknown codec %q", s)
	}
}

func parseMode(s string) (config.Mode, error) {
	switch s {
	case "lossless":
		return config.Lossless, nil
	case "lossy":
		return config.Lossy, nil
	case "nearlossless":
		return config.NearLossless, nil
	default:
		return 0, errors.New(errors.Configuration, "unknown mode %q", s)
	}
}
