package filestore

import (
	"strconv"
	"strings"
)

// ParseRange parses a single-range HTTP Range header ("bytes=<start>-<end>")
// against an object of the given length. A missing end means length-1. The
// end is clamped to the last byte. Multi-range and suffix-range requests,
// malformed headers, and ranges starting at or past the end of the object
// all return ErrInvalidRange (the caller answers 416).
func ParseRange(header string, length int64) (start, end int64, err error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok || strings.Contains(spec, ",") {
		return 0, 0, ErrInvalidRange
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok || startStr == "" {
		return 0, 0, ErrInvalidRange
	}

	start, err = strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidRange
	}

	if endStr == "" {
		end = length - 1
	} else {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return 0, 0, ErrInvalidRange
		}
		if end > length-1 {
			end = length - 1
		}
	}

	if start > end || start >= length {
		return 0, 0, ErrInvalidRange
	}
	return start, end, nil
}
