// Package server is the HTTP surface of the HKS site: the page, its static
// assets, the simulated scan and contact APIs, health probes and metrics.
package server
