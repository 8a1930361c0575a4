package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/hupe1980/kmeans3d/blobstore"
	"github.com/matrixorigin/simdcsv"
	"gonum.org/v1/gonum/mat"
)

// DataSet is a parsed numeric table.
type DataSet struct {
	// Data holds one row per data line, in input order.
	Data *mat.Dense
	// Headers names the columns. Empty when the input had no header row.
	Headers []string
	// Malformed counts fields that did not parse and were stored as NaN.
	Malformed int
}

// Dims returns the number of rows and columns.
func (d *DataSet) Dims() (rows, cols int) {
	return d.Data.Dims()
}

// NumericView returns a copy of the first min(ncols, cols) columns.
func (d *DataSet) NumericView(ncols int) *mat.Dense {
	rows, cols := d.Data.Dims()
	if ncols > cols {
		ncols = cols
	}
	if ncols <= 0 {
		return nil
	}
	view := mat.NewDense(rows, ncols, nil)
	view.Copy(d.Data.Slice(0, rows, 0, ncols))
	return view
}

// Load opens name from store and parses it with Read.
// A .gz, .zst or .lz4 suffix selects the matching decompressor.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*DataSet, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, loadError(name, OpOpen, err)
	}
	defer rc.Close()

	r, err := decompress(name, rc)
	if err != nil {
		return nil, loadError(name, OpDecompress, err)
	}
	defer r.Close()

	ds, err := read(ctx, r, applyOptions(opts))
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Name = name
			return nil, le
		}
		return nil, err
	}
	return ds, nil
}

// Read parses a tab-separated table from r.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*DataSet, error) {
	return read(ctx, r, applyOptions(opts))
}

func read(ctx context.Context, r io.Reader, o options) (*DataSet, error) {
	// simdcsv loses the tail of a source whose last Read returns data together
	// with io.EOF, which gzip and lz4 readers do. Hand it a buffered copy.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, loadError("", OpRead, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, loadError("", OpRead, err)
	}

	reader := simdcsv.NewReaderWithOptions(bytes.NewReader(data), '\t', 0, false, false)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, loadError("", OpParse, err)
	}

	var (
		headers []string
		values  []float64
		width   = -1
		rows    int
		bad     int
	)

	for i, record := range records {
		if width < 0 {
			width = len(record)
			if o.header {
				headers = append([]string(nil), record...)
				continue
			}
		}
		if len(record) != width {
			return nil, loadError("", OpShape, fmt.Errorf("record %d has %d fields, want %d", i+1, len(record), width))
		}
		for col, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				o.logger.Debug("malformed field", "record", i+1, "column", col, "value", field)
				v = math.NaN()
				bad++
			}
			values = append(values, v)
		}
		rows++
	}

	if rows == 0 || width <= 0 {
		return nil, loadError("", OpShape, fmt.Errorf("no data rows"))
	}

	if bad > 0 {
		o.logger.Warn("malformed fields replaced with NaN", "count", bad)
	}

	return &DataSet{
		Data:      mat.NewDense(rows, width, values),
		Headers:   headers,
		Malformed: bad,
	}, nil
}
