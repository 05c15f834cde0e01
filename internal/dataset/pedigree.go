package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/inferank/internal/model"
)

// Required pedigree CSV columns.
const (
	columnName   = "name"
	columnMother = "mother"
	columnFather = "father"
	columnTrait  = "trait"
)

// LoadPedigree reads a pedigree CSV file.
// See ReadPedigree for the format.
func LoadPedigree(path string) (*model.Pedigree, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ReadPedigree(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadPedigree parses a pedigree from CSV.
//
// The first row is a header naming the columns name, mother, father and
// trait, in any order; extra columns are ignored. mother and father are
// empty or the name of another row. trait is empty when unknown, otherwise
// a boolean flag such as 1, 0, true or false.
func ReadPedigree(r io.Reader) (*model.Pedigree, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{columnName, columnMother, columnFather, columnTrait} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var people []model.Person
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		trait, err := ParseTrait(record[columns[columnTrait]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		people = append(people, model.Person{
			Name:   strings.TrimSpace(record[columns[columnName]]),
			Mother: strings.TrimSpace(record[columns[columnMother]]),
			Father: strings.TrimSpace(record[columns[columnFather]]),
			Trait:  trait,
		})
	}

	return model.NewPedigree(people)
}

// ParseTrait parses a trait flag. An empty value means unknown and yields nil.
func ParseTrait(value string) (*bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTrait, value)
	}
	return &b, nil
}
