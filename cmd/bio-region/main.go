// bio-region evaluates genomic region relations and extracts regions from
// FASTA, GFF3, BED and VCF files.  Run "bio-region help" for the list of
// subcommands.
package main

import "github.com/grailbio/genomic/cmd/bio-region/cmd"

func main() {
	cmd.Run()
}
