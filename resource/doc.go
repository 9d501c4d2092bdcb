// Package resource bounds the memory, parallelism and IO bandwidth spent on
// fetching and loading corpus splits.
//
// A nil *Controller imposes no limits.
package resource
