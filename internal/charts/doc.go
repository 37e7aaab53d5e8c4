// Package charts holds the pure numeric routines behind the dashboard's
// chart rendering: stacked-area accumulation, axis tick scaling and Pearson
// correlation for the ad-hoc scatter view. Everything here operates on
// already-aggregated series and performs no I/O.
package charts
