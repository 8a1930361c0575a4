// Package dataset loads tab-separated numeric tables into gonum matrices.
//
// The first line is a header row naming the columns. Every other line is a
// data row; each field is parsed as a 64-bit float and fields that do not
// parse become NaN instead of failing the load. Rows must all have the same
// number of fields.
//
// Inputs whose name ends in .gz, .zst or .lz4 are decompressed on the fly.
//
//	ds, err := dataset.Load(ctx, blobstore.NewLocalStore(""), "points.tsv.gz")
//	if err != nil {
//	    return err
//	}
//	rows, cols := ds.Dims()
package dataset
