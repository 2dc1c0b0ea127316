package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	errs "github.com/matzehuels/graphstab/pkg/errors"
)

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "coded",
			err:  errs.New(errs.ErrCodeInvalidShape, "row %d has %d entries, want %d", 1, 2, 3),
			want: "error: INVALID_SHAPE: row 1 has 2 entries, want 3\n",
		},
		{
			name: "plain",
			err:  errors.New("unknown flag: --bogus"),
			want: "error: unknown flag: --bogus\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("printError() = %q, want %q", got, tt.want)
			}
			if code := errs.GetCode(tt.err); code != "" {
				if n := strings.Count(buf.String(), string(code)); n != 1 {
					t.Errorf("code %s appears %d times", code, n)
				}
			}
		})
	}
}
