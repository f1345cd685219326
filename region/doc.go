/*Package region implements genomic regions: a label (usually a chromosome or
  contig name), a 1-based closed range and an optional strand, plus the
  algebra over them (containment, overlap, distance, intersection, union,
  gaps and coordinate remapping).

  The textual form is
    [label][:first[-last]][/strand]
  for example "chr1:5-10/+", "chr7:42", "chrX" or ":1-10".  A region with
  first == last == 0 is empty; a non-empty region without a label is "pure"
  and matches any label in label-aware comparisons.  The zero Region is the
  empty, label-less, unstranded region and renders as ":0".

  Regions are values.  The With* methods and Resize return a new, validated
  Region and leave the receiver untouched.  Operations whose result may not
  exist (no overlap, different labels) return a comma-ok pair instead of an
  error.
*/
package region
