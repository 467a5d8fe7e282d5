package main

import (
	"fmt"
	"os"

	"github.com/cocosip/pixelcodec/dicom"
)

func runInfo(args []string) error {
	fs := newFlagSet("info")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: info <input>")
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}
	inst, err := dicom.Parse(data)
	if err != nil {
		return err
	}

	fmt.Printf("Rows: %d\n", inst.Rows)
	fmt.Printf("Columns: %d\n", inst.Columns)
	fmt.Printf("BitsAllocated: %d\n", inst.BitsAllocated)
	fmt.Printf("BitsStored: %d\n", inst.BitsStored)
	fmt.Printf("SamplesPerPixel: %d\n", inst.SamplesPerPixel)
	fmt.Printf("PhotometricInterpretation: %s\n", inst.PhotometricInterpretation)
	fmt.Printf("Modality: %s\n", inst.Modality)
	fmt.Printf("TransferSyntaxUID: %s\n", inst.TransferSyntaxUID)
	return nil
}
