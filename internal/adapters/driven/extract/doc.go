// Package extract provides a ProfileExtractor that reads the public profile
// fields out of an HTML page with goquery.
//
// Each field is the exact text content of the first element matching its
// selector. A field whose element is missing is reported as a placeholder,
// not as an error.
package extract
