// Package dataset loads pedigree CSV files into model.Pedigree values.
//
// Design decision: We use encoding/csv from the standard library. The files
// are small, flat and comma separated, and none of the libraries we already
// depend on handle CSV.
package dataset
