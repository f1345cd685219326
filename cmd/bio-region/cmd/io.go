package cmd

import (
	"context"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// openInput opens path for reading, transparently decompressing gzip files.
// "-" and "" mean stdin.  The returned function closes everything opened.
func openInput(ctx context.Context, path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	r := io.Reader(in.Reader(ctx))
	closer := func() error { return in.Close(ctx) }
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			_ = in.Close(ctx)
			return nil, nil, errors.E(err, "open", path)
		}
		r = gz
		closer = func() error {
			err := gz.Close()
			if cerr := in.Close(ctx); err == nil {
				err = cerr
			}
			return err
		}
	}
	return r, closer, nil
}

// createOutput creates path for writing; "-" and "" mean stdout.
func createOutput(ctx context.Context, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return out.Writer(ctx), func() error { return out.Close(ctx) }, nil
}
