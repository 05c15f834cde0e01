// Package model defines the data structures shared by inferank's packages.
//
// This package contains the following main types:
//   - Person, Pedigree: the family network used for heredity inference
//   - MarginalTable: per-person gene and trait distributions
//   - LinkGraph: the page link structure of a corpus
//   - RankVector: PageRank values per page
//   - HeredityReport, PageRankReport: the results of one run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The heredity, pagerank, pipeline and report packages all use
// these types, so centralizing them prevents import cycles.
package model
