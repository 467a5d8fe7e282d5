// Command pixelcodec is the CLI front-end for the pixel codec pipeline
// (spec §6): compress, info, and analyze subcommands over DICOM Part-10
// files.
package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/cocosip/pixelcodec/jpeg2000"
	_ "github.com/cocosip/pixelcodec/jpegls"
	_ "github.com/cocosip/pixelcodec/uncompressed"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "compress":
		err = runCompress(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "analyze":
		err = runAnalyze(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pixelcodec <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  compress <input> <output> [-c codec] [-m mode] [-r ratio] [-n near]")
	fmt.Fprintln(os.Stderr, "  info <input>")
	fmt.Fprintln(os.Stderr, "  analyze <input>")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
