/*Package interval implements interval-set operations over genomic regions.

  Set is an interval union: overlapping and touching regions are merged, not
  tracked separately, and it can be loaded directly from a BED file.  Index
  keeps every region it is given and answers overlap queries; use it when the
  individual regions matter.

  Set assumes every position fits in a PosType, which is currently defined as
  int32 since that's what BAM files are limited to.
*/
package interval
