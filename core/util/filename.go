package util

import (
	"bytes"
	"strings"
)

/*
Returns a file name that includes the given segment name, your own
custom name and extension. The format of the filename is:
<segmentName>(_<name>)(.<ext>).

NOTE: .<ext> is added to the result file name only if ext is not
empty.

NOTE: _<segmentSuffix> is added to the result file name only if it's
not the empty string.
*/
func SegmentFileName(name, suffix, ext string) string {
	if len(ext) > 0 || len(suffix) > 0 {
		assert2(!strings.HasPrefix(ext, "."), "extension must not start with '.' (got %v)", ext)
		var buffer bytes.Buffer
		buffer.WriteString(name)
		if len(suffix) > 0 {
			buffer.WriteString("_")
			buffer.WriteString(suffix)
		}
		if len(ext) > 0 {
			buffer.WriteString(".")
			buffer.WriteString(ext)
		}
		return buffer.String()
	}
	return name
}

/* Returns the extension of filename, or "" if it has none. */
func FileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[idx+1:]
	}
	return ""
}
