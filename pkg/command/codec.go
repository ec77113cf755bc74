// SPDX-License-Identifier: MPL-2.0

package command

// Result is the outcome of decoding text into a CommandList.
// Exactly one of List or Err is meaningful: when Err is nil the decode
// succeeded and List holds the commands (possibly empty).
type Result struct {
	List CommandList
	Err  error
}

// OK reports whether the decode succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Encode renders list in the given format. Commands with no arguments are
// skipped. The only error is an invalid format.
func Encode(list CommandList, f Format) (string, error) {
	switch f {
	case FormatTree:
		return EncodeTree(list), nil
	case FormatColon:
		return EncodeColon(list), nil
	case FormatJSON:
		return EncodeJSON(list)
	case FormatTSV:
		return EncodeTSV(list), nil
	default:
		return "", &InvalidFormatError{Value: f}
	}
}

// Decode parses text in the given format. Only FormatJSON can produce a
// failed Result from well-formed calls; an invalid format also fails.
func Decode(text string, f Format) Result {
	switch f {
	case FormatTree:
		return Result{List: DecodeTree(text)}
	case FormatColon:
		return Result{List: DecodeColon(text)}
	case FormatJSON:
		list, err := DecodeJSON(text)
		return Result{List: list, Err: err}
	case FormatTSV:
		return Result{List: DecodeTSV(text)}
	default:
		return Result{Err: &InvalidFormatError{Value: f}}
	}
}

// Convert decodes text in one format and re-encodes it in another.
func Convert(text string, from, to Format) (string, error) {
	res := Decode(text, from)
	if !res.OK() {
		return "", res.Err
	}
	return Encode(res.List, to)
}
