package record

import (
	"archive/zip"
	"bytes"
)

// FromArchive opens data as a zip archive, locates the named member and
// CSV-normalizes it. A corrupt archive is a *MalformedArchiveError; an
// absent member is a *MissingMemberError.
func FromArchive(data []byte, member string, opts CSVOptions) (Sequence, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &MalformedArchiveError{Err: err}
	}

	for _, f := range zr.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &MalformedArchiveError{Err: err}
		}
		defer rc.Close()
		return FromCSV(rc, opts)
	}
	return nil, &MissingMemberError{Name: member}
}
