// Package mock provides hand-written mocks for workbench interfaces.
// Each mock exposes one function field per interface method.
package mock
