// Package rule30 exposes module-level metadata shared by the CLI and the
// output writers.
package rule30

// Version is the semantic version of the rule30 module.
const Version = "0.1.0"

// Software identifies the producing tool in persisted dataset attributes.
const Software = "rule30-analyzer"
