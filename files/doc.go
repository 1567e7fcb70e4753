// Package files holds the Shelf API files namespace: folder listing,
// metadata lookup, upload, download and delete, with the data types those
// routes exchange.
package files
