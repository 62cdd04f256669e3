package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ewalker/ziv"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	app := cli.App{
		Usage: "Compress and decompress files with an adaptive dictionary coder",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress files into .ziv archives",
				Action:    compressFiles,
				ArgsUsage: "FILE [FILE...]",
			},
			{
				Name:      "decompress",
				Usage:     "Decompress .ziv archives",
				Action:    decompressFiles,
				ArgsUsage: "FILE [FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "txt",
						Usage: "extension given to the decompressed output",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

func compressFiles(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("no input files", 1)
	}
	var merr error
	for _, name := range c.Args().Slice() {
		if err := compressFile(name); err != nil {
			merr = multierror.Append(merr, errors.Wrap(err, name))
		}
	}
	return merr
}

func compressFile(name string) error {
	dest := derivePath(name, "_compressed", "ziv")
	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer f.Close()

	if err := ziv.Compress(f, name); err != nil {
		return err
	}
	log.Printf("wrote %s", dest)
	return nil
}

func decompressFiles(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("no input files", 1)
	}
	var merr error
	for _, name := range c.Args().Slice() {
		if err := decompressFile(name, c.String("format")); err != nil {
			merr = multierror.Append(merr, errors.Wrap(err, name))
		}
	}
	return merr
}

func decompressFile(name, format string) error {
	src, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer src.Close()

	dest := derivePath(name, "_decompressed", format)
	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer f.Close()

	if err := ziv.Decompress(f, src); err != nil {
		return err
	}
	log.Printf("wrote %s", dest)
	return nil
}

// derivePath turns path/name.ext into path/name<suffix>.<ext2>.
func derivePath(name, suffix, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + suffix + "." + ext
}
