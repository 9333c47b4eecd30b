// Package web implements driven.PageFetcher over net/http.
//
// A fetch performs exactly one GET bounded by the configured timeout. Every
// failure is classified into a domain.Category with a sanitised message and
// logged at error level with the full diagnostic; only the sanitised message
// is visible through the returned error's Error method.
package web
