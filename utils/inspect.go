package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/voxelsplace/qrstl/qrstl"
)

// RunInspect reads an STL file, optionally .gz or .zst compressed, and
// prints its triangle count, bounds and fingerprint.
func RunInspect(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := qrstl.Decompress(f, compressionFromName(path))
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	tris, err := qrstl.ReadSTL(bytes.NewReader(data))
	if err != nil {
		return err
	}

	st := qrstl.Measure(tris)
	size := st.Size()
	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Triangles:   %d\n", st.Triangles)
	fmt.Fprintf(w, "From:        %v\n", st.Min)
	fmt.Fprintf(w, "To:          %v\n", st.Max)
	fmt.Fprintf(w, "Size:        %g x %g x %g\n", size[0], size[1], size[2])
	fmt.Fprintf(w, "Fingerprint: %016x\n", qrstl.Fingerprint(tris))
	return nil
}
