// Package workbench provides a local execution environment and code
// retrieval for AI-assisted development workflows. It materializes file
// collections onto a working directory, runs shell commands against them
// with live output capture, and indexes codebases for semantic search and
// natural language question answering.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., shell/, sqlite/, gemini/).
package workbench
