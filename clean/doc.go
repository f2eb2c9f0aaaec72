// Package clean provides helpers for cleaning free text (redacting names, removing links, stripping email
// greetings and signatures, lemmatizing) and Tables (normalising column names, coercing column types,
// compressing column storage, formatting UUIDs, and filtering to the most common values of a column).
package clean
