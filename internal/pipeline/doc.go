// Package pipeline provides a framework for executing processing steps in
// sequence.
//
// A heredity run loads a pedigree CSV and infers the marginals; a PageRank
// run crawls a corpus directory, samples and iterates. Each stage is a Step
// that receives the current report and fills it in.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context between steps
//
// The pipeline supports both individual runs and batch processing with
// concurrency control using errgroup.
package pipeline
