package cmd

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/genomic/encoding/fasta"
	"github.com/grailbio/genomic/region"
	"github.com/grailbio/genomic/sequence"
)

type sliceFlags struct {
	fastaPath, indexPath string
	upper, oriented      bool
	lineWidth            int
}

// loadFasta opens the reference.  With an index the sequence is read lazily,
// otherwise the whole file is loaded into memory.  The returned function
// releases the reference file.
func loadFasta(ctx context.Context, flags sliceFlags) (fasta.Fasta, func() error, error) {
	if flags.indexPath == "" {
		var opts []fasta.Opt
		if flags.upper {
			opts = append(opts, fasta.Upper)
		}
		fa, err := loadFastaInMemory(ctx, flags.fastaPath, opts)
		return fa, func() error { return nil }, err
	}
	if flags.upper {
		log.Printf("-upper is ignored for indexed FASTA %s", flags.fastaPath)
	}
	in, err := file.Open(ctx, flags.fastaPath)
	if err != nil {
		return nil, nil, err
	}
	fa, err := loadFastaIndexed(ctx, in.Reader(ctx), flags.indexPath)
	if err != nil {
		_ = in.Close(ctx)
		return nil, nil, err
	}
	return fa, func() error { return in.Close(ctx) }, nil
}

func loadFastaInMemory(ctx context.Context, path string, opts []fasta.Opt) (fa fasta.Fasta, err error) {
	in, closer, err := openInput(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fasta.New(in, opts...)
}

func loadFastaIndexed(ctx context.Context, in io.ReadSeeker, indexPath string) (fa fasta.Fasta, err error) {
	index, closer, err := openInput(ctx, indexPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fasta.NewIndexed(in, index)
}

// slice writes the bases under each region as a FASTA record whose header
// carries the region.
func slice(w io.Writer, fa fasta.Fasta, regions []region.Region, flags sliceFlags) error {
	for _, r := range regions {
		s, err := fasta.Slice(fa, r)
		if err != nil {
			return reportable{err}
		}
		if flags.oriented {
			if s, err = sequence.New(s.Name(), s.Oriented(), s.Loc()); err != nil {
				return err
			}
		}
		log.Debug.Printf("slice %v: %d bases, GC %.3f", r, s.Len(), s.GCRatio())
		if _, err := io.WriteString(w, s.FASTA(flags.lineWidth, 0, true)); err != nil {
			return err
		}
	}
	return nil
}
