// Package core provides the business logic for the product catalog.
//
// This package holds all catalog decisions independent of storage, UI or
// transport. It is used by the web server, the catalogctl CLI and tests
// without modification.
//
// # Ingestion
//
// An upload arrives as decoded spreadsheet rows ([Row]). [Normalize] reads
// the product, unit and company columns (accepting upper, title and lower
// case headers), trims them and assigns a category with [Classify]. A
// single row without a product name or company rejects the whole batch
// with a [*ValidationError]; nothing is stored.
//
// # Classification
//
// [Classify] walks an ordered rule table and returns the first category
// whose triggers appear in the product name or company name:
//
//	Classify("ENSURE VAN", "ABBOTT HEALTH(NUT)") // Nutritional Supplements
//	Classify("HAND SOAP", "DANONE")              // Nutritional Supplements: rule 1 beats rule 3
//	Classify("RANDOM WIDGET", "ACME")            // Miscellaneous
//
// # Browsing
//
// [Query] applies search, category and company filters then paginates.
// [IsSpecialOffer], [HasPromotion] and [NormalizeUnit] derive display
// fields from a product's unit string; they never change stored data.
//
// # Storage
//
// [Service] depends on a [CatalogStore]. The store package provides the
// implementation with primary, local and seed fallbacks.
package core
