// Package exporter writes the finished dashboard model to disk: one CSV per
// output sequence for downstream tooling, and optionally a single XLSX
// workbook for people. Exports are deterministic — rows follow the model's
// documented sort orders, so identical models produce identical files.
package exporter
