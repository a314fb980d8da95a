// Package requested models the schema a consumer asks to read. A requested schema is addressed
// by name rather than field id, and its field order is significant. Requested schemas can be
// built directly, parsed from Spark schema JSON (using https://github.com/tidwall/gjson), or
// adapted from an Apache Arrow schema.
package requested
