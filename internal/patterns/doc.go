// Package patterns holds the immutable library of sensitive-data matchers:
// payment cards, national identity numbers, contact details, secrets,
// credential assignments, bank-account-shaped digit runs and private key
// headers. Matchers are compiled once at package initialisation and are safe
// for concurrent use.
package patterns
