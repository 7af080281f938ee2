// Package testutil contains helper fakes used across tests to reduce
// boilerplate when exercising failure paths (codecs and backends failing on
// demand) and when asserting what was logged. These helpers are intentionally
// minimal and avoid adding third-party dependencies. They are not intended
// for production usage.
package testutil
