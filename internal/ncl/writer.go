package ncl

import (
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// TypeError reports a field whose value is neither a number nor a sequence
// of number-convertible values. It aborts the whole translation.
type TypeError struct {
	Variable string
	Type     string
}

// Error implements the error interface for TypeError.
func (e *TypeError) Error() string {
	return fmt.Sprintf("variable %s: value of type %s is not a number or a sequence of numbers", e.Variable, e.Type)
}

// Writer emits NCL variable declarations to an underlying stream. Any write
// failure is returned as-is; the caller owns the stream's lifecycle.
type Writer struct {
	w io.Writer
}

// NewWriter wraps the given stream in an NCL declaration writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteVariable writes one declaration for the named value. A number becomes
// a single assignment line in scientific notation. A list, set or tuple of
// numbers becomes a parenthesized array literal with one continuation line
// per element:
//
//	name = (/
//	    1.000000e+00,\
//	    2.000000e+00,\
//	/)
func (w *Writer) WriteVariable(name string, val cty.Value) error {
	if val.IsNull() || !val.IsKnown() {
		return &TypeError{Variable: name, Type: val.Type().FriendlyName()}
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.Number):
		f, err := w.number(name, val)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w.w, "%s = %e\n", name, f)
		return err

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		if _, err := fmt.Fprintf(w.w, "%s = (/\n", name); err != nil {
			return err
		}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			f, err := w.number(name, elem)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w.w, "    %e,\\\n", f); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w.w, "/)\n")
		return err

	default:
		return &TypeError{Variable: name, Type: ty.FriendlyName()}
	}
}

// number reads a single cty value as a float64, converting where the source
// type allows it.
func (w *Writer) number(name string, val cty.Value) (float64, error) {
	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, &TypeError{Variable: name, Type: val.Type().FriendlyName()}
	}
	var f float64
	if err := gocty.FromCtyValue(converted, &f); err != nil {
		return 0, &TypeError{Variable: name, Type: val.Type().FriendlyName()}
	}
	return f, nil
}
