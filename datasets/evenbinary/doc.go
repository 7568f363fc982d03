// Package evenbinary provides a synthetic dataset of even numbers written as binary digit
// sequences, labeled for teaching a classifier whether a number is even. Every sample is
// even by construction, so every label is 1; use Batch.Balanced to add odd negatives.
package evenbinary
