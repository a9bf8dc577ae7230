package config

// ToolName is the CLI binary name.
const ToolName = "symshape"

// DefaultGuardDB is the ledger filename used when --db is given without a
// value.
const DefaultGuardDB = "guards.db"

// CLIGuardFile is the diagnostic location attributed to guards forced from
// the command line.
const CLIGuardFile = "<cli>"
