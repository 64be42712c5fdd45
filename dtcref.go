// Package dtcref provides a local, CLI-based reference engine for
// standardized vehicle diagnostic trouble codes (DTCs). It loads a
// fixed corpus of code records, builds lookup, filter, and keyword
// indices over them, and answers point-lookup, filter, and ranked
// keyword-search queries.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or mechanism
// (e.g., mem/, sqlite/, gemini/).
package dtcref
