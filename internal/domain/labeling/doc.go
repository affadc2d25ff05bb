// Package labeling contains the Labeling bounded context.
// This context is responsible for label templates and their positioned
// elements, shipper barcode rules, product-name cleanup rules, sequential
// code formats, and the label print queue.
package labeling
