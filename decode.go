package citypop

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strconv"

	"github.com/jszwec/csvutil"
)

// Decoder reads Rows from a comma separated stream whose first line is a
// header. It is single-pass: rows already yielded are gone.
type Decoder struct {
	cr     *csv.Reader
	dec    *csvutil.Decoder
	record int
	done   bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{cr: csv.NewReader(r)}
}

// Record returns the 1-based index of the last data record read,
// not counting the header.
func (d *Decoder) Record() int {
	return d.record
}

// Rows returns an iterator over the remaining rows.
//
// A record that fails to parse is yielded with a non-nil error and the
// iterator moves on to the next record if the caller keeps ranging. Any
// other read failure is yielded once and ends the sequence.
func (d *Decoder) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		if d.done {
			return
		}
		if d.dec == nil {
			if err := d.readHeader(); err != nil {
				d.done = true
				if err != io.EOF {
					yield(Row{}, err)
				}
				return
			}
		}

		for {
			var row Row
			err := d.dec.Decode(&row)
			if err == io.EOF {
				d.done = true
				return
			}
			d.record++
			if err != nil && !IsRowError(err) {
				d.done = true
				yield(Row{}, err)
				return
			}
			if !yield(row, err) {
				return
			}
		}
	}
}

// readHeader consumes the header line and binds the known columns by
// position.
func (d *Decoder) readHeader() error {
	if _, err := d.cr.Read(); err != nil {
		return err
	}
	dec, err := csvutil.NewDecoder(d.cr, columns...)
	if err != nil {
		return err
	}
	d.dec = dec
	return nil
}

// IsRowError reports whether err describes a single malformed record, as
// opposed to a failure of the underlying reader.
func IsRowError(err error) bool {
	var (
		parseErr *csv.ParseError
		typeErr  *csvutil.UnmarshalTypeError
		numErr   *strconv.NumError
	)
	switch {
	case errors.As(err, &parseErr):
		return true
	case errors.As(err, &typeErr):
		return true
	case errors.As(err, &numErr):
		return true
	case errors.Is(err, csvutil.ErrFieldCount):
		return true
	}
	return false
}
