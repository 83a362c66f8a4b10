package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write emits a workload to w: the header line "<size> <operations>" followed
// by one line per operation drawn from gen. Every line is newline terminated.
// The first write error aborts the loop and is returned.
func Write(w io.Writer, gen *Generator, operations int) error {
	bw := bufio.NewWriterSize(w, 1<<20) // 1MB buffer

	if _, err := fmt.Fprintf(bw, "%d %d\n", gen.Size(), operations); err != nil {
		return err
	}

	for i := 0; i < operations; i++ {
		op := gen.Next()
		var err error
		if op.Kind == KindQuery {
			_, err = fmt.Fprintf(bw, "%s %d\n", LabelQuery, op.Index)
		} else {
			_, err = fmt.Fprintf(bw, "%s %d %d\n", LabelAdd, op.Index, op.Value)
		}
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates or truncates path and writes a workload to it. The file
// is closed on every exit path. There is no temp-file or rename step, so a
// failed run can leave a partial file behind; callers tolerate that.
func WriteFile(path string, gen *Generator, operations int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(f, gen, operations); err != nil {
		f.Close()
		return fmt.Errorf("failed to write workload: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
