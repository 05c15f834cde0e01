package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/inferank/internal/model"
)

const family0 = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

// TestReadPedigree tests CSV parsing.
func TestReadPedigree(t *testing.T) {
	t.Parallel()

	t.Run("parses family", func(t *testing.T) {
		t.Parallel()

		p, err := ReadPedigree(strings.NewReader(family0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Len() != 3 {
			t.Fatalf("expected 3 people, got %d", p.Len())
		}

		harry := p.Person(0)
		if harry.Mother != "Lily" || harry.Father != "James" || harry.Trait != nil {
			t.Errorf("unexpected Harry: %+v", harry)
		}
		james := p.Person(1)
		if james.Trait == nil || !*james.Trait {
			t.Errorf("expected James to have the trait, got %+v", james)
		}
		lily := p.Person(2)
		if lily.Trait == nil || *lily.Trait {
			t.Errorf("expected Lily not to have the trait, got %+v", lily)
		}
	})

	t.Run("columns in any order with extras", func(t *testing.T) {
		t.Parallel()

		input := "trait, Name ,notes,father,mother\n1,Ann,founder,,\n,Bob,,,\n"
		p, err := ReadPedigree(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Person(0).Name != "Ann" || p.Person(0).Trait == nil {
			t.Errorf("unexpected first person: %+v", p.Person(0))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := ReadPedigree(strings.NewReader(""))
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()

		_, err := ReadPedigree(strings.NewReader("name,mother,father\nA,,\n"))
		if !errors.Is(err, ErrMissingColumn) {
			t.Errorf("expected ErrMissingColumn, got %v", err)
		}
	})

	t.Run("invalid trait", func(t *testing.T) {
		t.Parallel()

		_, err := ReadPedigree(strings.NewReader("name,mother,father,trait\nA,,,maybe\n"))
		if !errors.Is(err, ErrInvalidTrait) {
			t.Errorf("expected ErrInvalidTrait, got %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "line 2") {
			t.Errorf("expected line number in error, got %v", err)
		}
	})

	t.Run("unknown parent is an input error", func(t *testing.T) {
		t.Parallel()

		_, err := ReadPedigree(strings.NewReader("name,mother,father,trait\nA,B,C,\nB,,,\n"))
		if !errors.Is(err, model.ErrUnknownParent) {
			t.Errorf("expected ErrUnknownParent, got %v", err)
		}
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ReadPedigree(strings.NewReader("name,mother,father,trait\nA,,\n"))
		if err == nil {
			t.Error("expected error for short row")
		}
	})
}

// TestParseTrait tests trait flag parsing.
func TestParseTrait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    *bool
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "  ", want: nil},
		{in: "1", want: ptr(true)},
		{in: "0", want: ptr(false)},
		{in: "TRUE", want: ptr(true)},
		{in: "false", want: ptr(false)},
		{in: "yes", wantErr: true},
		{in: "2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTrait(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTrait) {
					t.Errorf("expected ErrInvalidTrait, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("ParseTrait(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestLoadPedigree tests reading from disk.
func TestLoadPedigree(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "family0.csv")
		if err := os.WriteFile(path, []byte(family0), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		p, err := LoadPedigree(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Len() != 3 {
			t.Errorf("expected 3 people, got %d", p.Len())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadPedigree(filepath.Join(t.TempDir(), "missing.csv"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("errors name the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.csv")
		if err := os.WriteFile(path, []byte("name\nA\n"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		_, err := LoadPedigree(path)
		if err == nil || !strings.Contains(err.Error(), "bad.csv") {
			t.Errorf("expected error naming bad.csv, got %v", err)
		}
	})
}

func ptr(b bool) *bool {
	return &b
}
