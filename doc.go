/*

  Hilbert implements bijective conversions between n-dimensional integer coordinates and Hilbert indices, so that points close in space get nearby indices.

  Five variants share one contract (the Curve interface) and are picked when the curve is created:

    GlobalGray      n dimensions, equal bits per axis; one global Gray code plus an untwisting pass (Skilling).
    SpaceGray       n dimensions, equal bits per axis; the level-by-level space-key walk (Hamilton).
    Compact         n dimensions, bits may differ per axis; the index holds only the sum of the axis widths (Hamilton and Rau-Chaplin).
    FaceContinuous  n dimensions, equal bits per axis; the oldest construction, slower, with its own path (Butz, Lawder).
    Simple2D        two dimensions, no size declared up front; the index grows with the coordinates (Chen, Wang and Shi).

  ZOrder, the Morton curve this package grew from, is kept as a non-Hilbert baseline.

  Every curve computes in 128 bits and checks results against its declared index Width; Narrow, Encode and Decode convert to narrower Go types and report a TruncationError instead of wrapping. Curves are immutable and safe for concurrent use.

*/
package hilbert
