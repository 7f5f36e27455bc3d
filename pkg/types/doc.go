// Package types defines the simulation parameter, grid, and result types
// shared by the evolution engine, the statistics engine, and the output
// writers, together with the standard errors each stage can return.
package types
