package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/genomic/encoding/gff"
	"github.com/grailbio/genomic/encoding/vcf"
	"github.com/grailbio/genomic/interval"
	"v.io/x/lib/cmdline"
)

const regionHelp = `Regions are written [label][:range][/strand], where range is "N" or "N-M"
(1-based, both ends included) and strand is + or -. For example
'chr1:100-200/+', 'chr1:5', ':10-20' or 'chrM'.`

func newCmdRelate() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "relate",
		Short:    "Print every relation between two regions",
		Long:     regionHelp,
		ArgsName: "region region",
	}
	orient := cmd.Flags.Bool("orient", false, "Evaluate upstream, downstream and dist as seen along the strand")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("relate takes two regions, but got %v", argv)
		}
		regions, err := parseRegions(argv)
		if err != nil {
			return err
		}
		return relate(env.Stdout, regions[0], regions[1], *orient)
	})
	return cmd
}

func newCmdChunks() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "chunks",
		Short:    "Cut a region into consecutive pieces of a fixed length",
		Long:     regionHelp,
		ArgsName: "region length",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("chunks takes a region and a length, but got %v", argv)
		}
		regions, err := parseRegions(argv[:1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(argv[1])
		if err != nil {
			return fmt.Errorf("chunks: bad length %q: %v", argv[1], err)
		}
		return chunks(env.Stdout, regions[0], n)
	})
	return cmd
}

func newCmdSlice() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "slice",
		Short:    "Extract the bases under regions from a FASTA file",
		Long:     regionHelp,
		ArgsName: "region...",
	}
	flags := sliceFlags{}
	cmd.Flags.StringVar(&flags.fastaPath, "fasta", "", "Input FASTA path (required)")
	cmd.Flags.StringVar(&flags.indexPath, "index", "", "FASTA index (.fai) path. If empty, the whole FASTA is loaded into memory")
	cmd.Flags.BoolVar(&flags.upper, "upper", false, "Convert bases to upper case (in-memory FASTA only)")
	cmd.Flags.BoolVar(&flags.oriented, "oriented", false, "Reverse-complement the bases of reverse-stranded regions")
	cmd.Flags.IntVar(&flags.lineWidth, "line-width", 60, "Bases per output line; 0 writes each sequence on one line")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if flags.fastaPath == "" {
			return fmt.Errorf("slice: -fasta is required")
		}
		regions, err := parseRegions(argv)
		if err != nil {
			return err
		}
		ctx := vcontext.Background()
		fa, closer, err := loadFasta(ctx, flags)
		if err != nil {
			return err
		}
		err = slice(env.Stdout, fa, regions, flags)
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	})
	return cmd
}

func newCmdFlattenGFF() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "flatten-gff",
		Short:    "Convert a GFF3 file into a TSV table with one column per attribute",
		ArgsName: "[path]",
	}
	keysFlag := cmd.Flags.String("keys", "", "Comma-separated attribute columns to emit. By default every attribute key found, sorted")
	missingFlag := cmd.Flags.String("missing", gff.DefaultFlattenOpts.Missing, "Value written for missing fields and attributes")
	emptyFlag := cmd.Flags.String("empty", gff.DefaultFlattenOpts.Empty, "Value written for attributes present without a value")
	commentsFlag := cmd.Flags.Bool("comments", false, "Copy comment lines ahead of the table")
	outFlag := cmd.Flags.String("out", "", "Output path. By default, stdout")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) > 1 {
			return fmt.Errorf("flatten-gff takes at most one path, but got %v", argv)
		}
		var inPath string
		if len(argv) == 1 {
			inPath = argv[0]
		}
		opts := gff.FlattenOpts{
			Missing:  *missingFlag,
			Empty:    *emptyFlag,
			Comments: *commentsFlag,
		}
		if *keysFlag != "" {
			opts.Keys = strings.Split(*keysFlag, ",")
		}
		ctx := vcontext.Background()
		in, closeIn, err := openInput(ctx, inPath)
		if err != nil {
			return err
		}
		out, closeOut, err := createOutput(ctx, *outFlag)
		if err != nil {
			_ = closeIn()
			return err
		}
		err = gff.Flatten(out, gff.NewReader(in), opts)
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
		if cerr := closeIn(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	})
	return cmd
}

func newCmdBEDMerge() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bed-merge",
		Short:    "Merge the overlapping and touching intervals of a sorted BED file",
		ArgsName: "path",
	}
	oneBasedFlag := cmd.Flags.Bool("one-based", false, "Interpret the input as one-based [start, end] intervals. Output is always 0-based")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("bed-merge takes one pathname argument, but got %v", argv)
		}
		set, err := interval.NewSetFromPath(argv[0], interval.BEDOpts{OneBasedInput: *oneBasedFlag})
		if err != nil {
			return err
		}
		return bedMerge(env.Stdout, set)
	})
	return cmd
}

func newCmdVCFRegions() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "vcf-regions",
		Short:    "Print the region, alleles and genotypes of every VCF record",
		ArgsName: "[path]",
	}
	samplesFlag := cmd.Flags.String("samples", "", "Comma-separated samples to report. By default all of them")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) > 1 {
			return fmt.Errorf("vcf-regions takes at most one path, but got %v", argv)
		}
		var inPath string
		if len(argv) == 1 {
			inPath = argv[0]
		}
		var samples []string
		if *samplesFlag != "" {
			samples = strings.Split(*samplesFlag, ",")
		}
		ctx := vcontext.Background()
		in, closer, err := openInput(ctx, inPath)
		if err != nil {
			return err
		}
		err = vcfRegions(env.Stdout, vcf.NewReader(in), samples)
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	})
	return cmd
}

// Run executes the bio-region command line.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-region",
			Short:    "Tools for working with genomic regions",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdRelate(),
				newCmdChunks(),
				newCmdSlice(),
				newCmdFlattenGFF(),
				newCmdBEDMerge(),
				newCmdVCFRegions(),
			},
		})
}
